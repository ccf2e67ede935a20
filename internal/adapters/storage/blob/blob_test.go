package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func media(t *testing.T) map[string]func(t *testing.T) Store {
	t.Helper()

	out := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemory() },
		"file": func(t *testing.T) Store {
			s, err := NewFile(t.TempDir())
			require.NoError(t, err)
			return s
		},
		"badger": func(t *testing.T) Store {
			s, err := NewBadger("", nil)
			require.NoError(t, err)
			return s
		},
	}
	if addr := os.Getenv("PETCARE_TEST_REDIS_ADDR"); addr != "" {
		out["redis"] = func(t *testing.T) Store {
			s, err := NewRedis(context.Background(), RedisOptions{Addr: addr, Prefix: fmt.Sprintf("petcare-test:%d:", time.Now().UnixNano())})
			require.NoError(t, err)
			return s
		}
	}
	return out
}

func TestStore_AbsentBlobIsNil(t *testing.T) {
	for name, open := range media(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			b, err := s.Get(context.Background(), "pets")
			require.NoError(t, err)
			assert.Nil(t, b)
		})
	}
}

func TestStore_PutReplacesWholeBlob(t *testing.T) {
	ctx := context.Background()
	for name, open := range media(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			require.NoError(t, s.Put(ctx, "products", []byte(`[{"id":"a"},{"id":"b"}]`)))
			require.NoError(t, s.Put(ctx, "products", []byte(`[]`)))

			b, err := s.Get(ctx, "products")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(b))

			other, err := s.Get(ctx, "appointments")
			require.NoError(t, err)
			assert.Nil(t, other)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	in := []byte(`[1]`)
	require.NoError(t, s.Put(ctx, "pets", in))
	in[1] = '2'

	got, err := s.Get(ctx, "pets")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Close())

	_, err := s.Get(context.Background(), "pets")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Put(context.Background(), "pets", nil), ErrClosed)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "healthRecords", []byte(`[{"id":"h1"}]`)))

	_, err = os.Stat(filepath.Join(dir, "healthRecords.json"))
	require.NoError(t, err)

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	b, err := reopened.Get(ctx, "healthRecords")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"h1"}]`, string(b))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestNewFile_RequiresDir(t *testing.T) {
	_, err := NewFile("  ")
	assert.Error(t, err)
}

func TestBadgerStore_OnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "pets", []byte(`[{"id":"p1"}]`)))
	require.NoError(t, s.Close())

	reopened, err := NewBadger(dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	b, err := reopened.Get(ctx, "pets")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(b))
}
