// Package resultcache persists evaluated probabilities in a badger database
// so that later runs can skip topologies they have already seen.
package resultcache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/zerr"
)

// keyPrefix versions the key layout.
var keyPrefix = []byte("p1/")

// Cache implements ports.ResultCache on top of badger.
// It is safe for concurrent use.
type Cache struct {
	db *badger.DB
}

// Factory implements ports.ResultCacheFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose databases log through log.
func NewFactory(log ports.Logger) *Factory {
	return &Factory{logger: log}
}

// Open opens the cache stored in dir, creating the directory if needed.
// Only one process may hold a directory open at a time.
func (f *Factory) Open(dir string) (ports.ResultCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResultCacheUnavailable.Error()), "path", dir)
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(&badgerLogger{logger: f.logger}).
		WithNumVersionsToKeep(1)
	c, err := open(opts, dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// OpenInMemory opens a cache that is discarded on Close.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	return open(opts, "")
}

func open(opts badger.Options, dir string) (*Cache, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResultCacheUnavailable.Error()), "path", dir)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached probability of t under theta.
func (c *Cache) Get(ctx context.Context, t domain.Topology, theta float64) (float64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(t, theta))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, zerr.With(zerr.Wrap(err, "failed to read result cache"), "topology", t.String())
	}

	p, err := decodeValue(raw)
	if err != nil {
		return 0, false, zerr.With(err, "topology", t.String())
	}
	return p, true, nil
}

// Put records p as the probability of t under theta.
func (c *Cache) Put(ctx context.Context, t domain.Topology, theta, p float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(t, theta), encodeValue(p))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write result cache"), "topology", t.String())
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key returns the database key of t under theta: the prefix, the bits of
// theta and the varint encoded vector.
func Key(t domain.Topology, theta float64) []byte {
	values := t.Values()
	key := make([]byte, 0, len(keyPrefix)+8+len(values))
	key = append(key, keyPrefix...)
	key = binary.BigEndian.AppendUint64(key, math.Float64bits(theta))
	for _, v := range values {
		key = binary.AppendVarint(key, int64(v))
	}
	return key
}

func encodeValue(p float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(p))
}

func decodeValue(raw []byte) (float64, error) {
	if len(raw) != 8 {
		return 0, zerr.With(domain.ErrResultCacheCorrupt, "length", len(raw))
	}
	p := math.Float64frombits(binary.BigEndian.Uint64(raw))
	if !(p > 0 && p <= 1) {
		return 0, zerr.With(domain.ErrResultCacheCorrupt, "probability", p)
	}
	return p, nil
}

// badgerLogger routes badger's own logging to a ports.Logger.
type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug("badger: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug("badger: " + fmt.Sprintf(format, args...))
}
