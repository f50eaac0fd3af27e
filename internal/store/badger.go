package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKV implements KV on a BadgerDB directory. Writes are synced so a
// completed Set survives process exit.
type BadgerKV struct {
	db *badger.DB
}

func NewBadgerKV(dbPath string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable logging
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerKV{db: db}, nil
}

func (s *BadgerKV) Get(key string) (string, bool) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *BadgerKV) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", key, err)
	}
	return nil
}

func (s *BadgerKV) Close() error {
	return s.db.Close()
}
