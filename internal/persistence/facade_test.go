package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/adapters/storage/document"
	"pet-care-records/internal/config"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/persistence"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/storagetest"
)

func documentConfig(medium, dir string) config.StorageConfig {
	return config.StorageConfig{
		Backend:  config.BackendDocument,
		Document: config.DocumentConfig{Medium: medium, Dir: dir},
	}
}

func sqliteConfig(path string, fk bool) config.StorageConfig {
	return config.StorageConfig{
		Backend:    config.BackendRelational,
		Relational: config.RelationalConfig{Driver: config.DriverSQLite, Path: path, ForeignKeys: fk},
	}
}

func openFacade(t *testing.T, cfg config.StorageConfig) *persistence.Facade {
	t.Helper()
	f, err := persistence.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestOpen_DocumentMemory(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		return openFacade(t, documentConfig(config.MediumMemory, ""))
	})
}

func TestOpen_RelationalSQLite(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		return openFacade(t, sqliteConfig("", true))
	})
}

func TestOpen_BackendNames(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{"memory", documentConfig(config.MediumMemory, ""), "document/memory"},
		{"file", documentConfig(config.MediumFile, t.TempDir()), "document/file"},
		{"badger", documentConfig(config.MediumBadger, ""), "document/badger"},
		{"sqlite", sqliteConfig("", true), "relational/sqlite"},
		{"sqlite file", sqliteConfig(filepath.Join(t.TempDir(), "pets.db"), false), "relational/sqlite"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := openFacade(t, tc.cfg)
			assert.Equal(t, tc.want, f.Backend())

			ctx := context.Background()
			_, err := f.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
			require.NoError(t, err)
			got, err := f.GetPet(ctx, "p1")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "Rex", got.Name)
		})
	}
}

func TestOpen_FileMediumPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	f, err := persistence.Open(ctx, documentConfig(config.MediumFile, dir), logger.Nop())
	require.NoError(t, err)
	_, err = f.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f = openFacade(t, documentConfig(config.MediumFile, dir))
	pets, err := f.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "p1", pets[0].ID)
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{"unknown backend", config.StorageConfig{Backend: "bogus"}},
		{"empty backend", config.StorageConfig{}},
		{"unknown medium", documentConfig("floppy", "")},
		{"file without dir", documentConfig(config.MediumFile, "")},
		{"redis without addr", documentConfig(config.MediumRedis, "")},
		{"unknown driver", config.StorageConfig{
			Backend:    config.BackendRelational,
			Relational: config.RelationalConfig{Driver: "oracle"},
		}},
		{"postgres without dsn", config.StorageConfig{
			Backend:    config.BackendRelational,
			Relational: config.RelationalConfig{Driver: config.DriverPostgres},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := persistence.Open(context.Background(), tc.cfg, logger.Nop())
			assert.Nil(t, f)
			assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
		})
	}
}

func TestOpen_UnreachableRedisIsStorageUnavailable(t *testing.T) {
	cfg := config.StorageConfig{
		Backend:  config.BackendDocument,
		Document: config.DocumentConfig{Medium: config.MediumRedis, RedisAddr: "127.0.0.1:1"},
	}
	f, err := persistence.Open(context.Background(), cfg, logger.Nop())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, petcare.ErrStorageUnavailable)
}

func TestNew_ReportsWrappedBackend(t *testing.T) {
	f := persistence.New(document.New(blob.NewMemory(), logger.Nop()))
	t.Cleanup(func() { _ = f.Close() })
	assert.Equal(t, config.BackendDocument, f.Backend())

	outer := persistence.New(f)
	assert.Equal(t, config.BackendDocument, outer.Backend())
}
