// Package store implements the in-memory probability store used to memoize
// one evaluation.
package store

import (
	"slices"

	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
)

type entry struct {
	topology    domain.Topology
	probability float64
}

// Store implements ports.ProbabilityStore as a slice kept sorted by
// domain.Topology.Compare. It is not safe for concurrent use; every
// evaluation owns its own Store.
type Store struct {
	entries []entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) search(t domain.Topology) (int, bool) {
	return slices.BinarySearchFunc(s.entries, t, func(e entry, t domain.Topology) int {
		return e.topology.Compare(t)
	})
}

// Find returns the stored probability of t, or 0 if t has not been stored.
func (s *Store) Find(t domain.Topology) float64 {
	i, ok := s.search(t)
	if !ok {
		return 0
	}
	return s.entries[i].probability
}

// Store records p as the probability of t, replacing any earlier value.
// It panics if p is not positive, since zero marks an absent entry.
func (s *Store) Store(t domain.Topology, p float64) {
	if !(p > 0) {
		panic("store: probability of " + t.String() + " must be positive")
	}
	i, ok := s.search(t)
	if ok {
		s.entries[i].probability = p
		return
	}
	s.entries = slices.Insert(s.entries, i, entry{topology: t, probability: p})
}

// Len returns the number of stored topologies.
func (s *Store) Len() int {
	return len(s.entries)
}

// Topologies returns the stored topologies in key order.
func (s *Store) Topologies() []domain.Topology {
	out := make([]domain.Topology, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.topology
	}
	return out
}

// Factory implements ports.StoreFactory.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewStore returns an empty Store.
func (Factory) NewStore() ports.ProbabilityStore {
	return NewStore()
}
