package blob

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"pet-care-records/internal/platform/logger"
)

const badgerKeyPrefix = "collection:"

// BadgerStore guarda cada colección bajo la key "collection:<name>".
type BadgerStore struct {
	db *badger.DB
}

// badgerLogger adapta nuestro logger a badger.Logger.
type badgerLogger struct {
	log logger.Logger
}

var _ badger.Logger = (*badgerLogger)(nil)

func (b *badgerLogger) Errorf(msg string, items ...any) {
	b.log.Error(fmt.Sprintf(msg, items...), nil)
}

func (b *badgerLogger) Warningf(msg string, items ...any) {
	b.log.Warn(fmt.Sprintf(msg, items...), nil)
}

func (b *badgerLogger) Infof(msg string, items ...any) {
	b.log.Debug(fmt.Sprintf(msg, items...), nil)
}

func (b *badgerLogger) Debugf(msg string, items ...any) {
	b.log.Debug(fmt.Sprintf(msg, items...), nil)
}

// NewBadger abre badger en dir; con dir == "" abre en memoria.
func NewBadger(dir string, log logger.Logger) (*BadgerStore, error) {
	if log == nil {
		log = logger.Nop()
	}

	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create badger directory: %w", err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = &badgerLogger{log: log.With(map[string]any{"component": "badger"})}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(ctx context.Context, name string) ([]byte, error) {
	if s.db.IsClosed() {
		return nil, ErrClosed
	}

	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + name))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %s: %w", name, err)
	}
	return out, nil
}

func (s *BadgerStore) Put(ctx context.Context, name string, data []byte) error {
	if s.db.IsClosed() {
		return ErrClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+name), clone(data))
	})
	if err != nil {
		return fmt.Errorf("badger put %s: %w", name, err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}
