package ports

import (
	"time"

	"go.trai.ch/gtprob/internal/core/domain"
)

// Metrics counts evaluator activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit records a sub-topology found in the store.
	CacheHit()
	// CacheMiss records a sub-topology that had to be computed.
	CacheMiss()
	// BaseCase records a closed form evaluation.
	BaseCase()
	// Decomposition records a topology split into terms.
	Decomposition(terms int)
	// ObserveEvaluation records the duration of a top-level evaluation.
	ObserveEvaluation(d time.Duration)
	// Snapshot returns the totals recorded so far.
	Snapshot() domain.Stats
}
