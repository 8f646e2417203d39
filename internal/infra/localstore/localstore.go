// Package localstore is the on-device document store: named collections of
// typed JSON documents persisted in Pebble, with change subscriptions.
//
// The store is local-first and best-effort. Every write lands in memory and is
// then persisted; a storage-medium failure is logged and swallowed, never
// surfaced to the caller — the session simply continues in-memory. Each
// collection is serialized by its own mutex so read-modify-write sequences
// stay atomic on a multi-threaded runtime.
package localstore

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pureflow/config"
)

// Store owns the Pebble handle shared by all collections. A nil db means the
// storage medium was unavailable at open; collections then run memory-only for
// the session.
type Store struct {
	db     *pebble.DB
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the document store at the configured path. An unusable storage
// medium is not fatal: the store degrades to memory-only and the app stays
// usable for the session.
func New(params Params) *Store {
	store := &Store{logger: params.Logger}

	db, err := pebble.Open(filepath.Clean(params.Config.Store.Path), &pebble.Options{})
	if err != nil {
		params.Logger.Warn("local store unavailable, continuing in-memory only",
			slog.String("path", params.Config.Store.Path),
			slog.Any("error", err),
		)
	} else {
		store.db = db
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(store.Close())
		},
	})

	return store
}

// Open is the plain constructor used by tests and tools that do not run under
// fx. Unlike New it reports an unusable medium to the caller.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := pebble.Open(filepath.Clean(path), &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "pebble open")
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the Pebble handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func (s *Store) set(key string, value []byte) error {
	if s.db == nil {
		return nil
	}

	return s.db.Set([]byte(key), value, pebble.NoSync)
}

func (s *Store) delete(key string) error {
	if s.db == nil {
		return nil
	}

	return s.db.Delete([]byte(key), pebble.NoSync)
}

// scanPrefix visits every key/value under prefix in key order.
func (s *Store) scanPrefix(prefix string, fn func(key string, value []byte) error) error {
	if s.db == nil {
		return nil
	}

	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: []byte(prefix + "\xff"),
	})
	if err != nil {
		return errors.Wrap(err, "pebble iterator")
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		k := append([]byte(nil), it.Key()...)
		v := append([]byte(nil), it.Value()...)
		if err := fn(string(k), v); err != nil {
			return err
		}
	}

	return nil
}
