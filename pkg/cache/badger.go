package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCache stores entries in an embedded Badger database.
type BadgerCache struct {
	db *badger.DB
}

// NewBadgerCache opens (or creates) a Badger database in dir.
func NewBadgerCache(dir string) (*BadgerCache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &BadgerCache{db: db}, nil
}

// Get reads an entry. Badger hides expired entries itself.
func (c *BadgerCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes an entry.
func (c *BadgerCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
}

// Delete removes an entry.
func (c *BadgerCache) Delete(ctx context.Context, key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Clear drops all data and reports the number of keys it held.
func (c *BadgerCache) Clear(ctx context.Context) (int, error) {
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, c.db.DropAll()
}

// Close closes the database.
func (c *BadgerCache) Close() error { return c.db.Close() }

var (
	_ Cache   = (*BadgerCache)(nil)
	_ Clearer = (*BadgerCache)(nil)
)
