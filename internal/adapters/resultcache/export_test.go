package resultcache

import "github.com/dgraph-io/badger/v4"

// PutRaw stores value under key, bypassing the encoding.
func (c *Cache) PutRaw(key, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}
