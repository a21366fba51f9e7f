package ports

import (
	"context"

	"go.trai.ch/gtprob/internal/core/domain"
)

// ResultCache persists the probabilities of evaluated topologies across runs.
//
//go:generate mockgen -source=result_cache.go -destination=mocks/mock_result_cache.go -package=mocks
type ResultCache interface {
	// Get returns the cached probability of t under theta. The boolean
	// reports whether an entry was found.
	Get(ctx context.Context, t domain.Topology, theta float64) (float64, bool, error)

	// Put records p as the probability of t under theta.
	Put(ctx context.Context, t domain.Topology, theta, p float64) error

	// Close releases the cache.
	Close() error
}

// ResultCacheFactory opens the result cache stored in a directory.
type ResultCacheFactory interface {
	Open(dir string) (ResultCache, error)
}
