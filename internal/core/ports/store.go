package ports

import "go.trai.ch/gtprob/internal/core/domain"

// ProbabilityStore memoizes the probabilities computed during one evaluation.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ProbabilityStore interface {
	// Find returns the stored probability of t, or 0 if there is none.
	// Zero is never a valid probability.
	Find(t domain.Topology) float64

	// Store records p as the probability of t. p must be positive.
	Store(t domain.Topology, p float64)

	// Len returns the number of stored topologies.
	Len() int
}

// StoreFactory creates an empty ProbabilityStore for each top-level evaluation.
type StoreFactory interface {
	NewStore() ProbabilityStore
}
