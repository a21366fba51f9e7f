package ports

import "go.trai.ch/gtprob/internal/core/domain"

//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks

// Evaluator computes the probability of a gene tree topology.
type Evaluator interface {
	// Calculate returns the probability of t for the given theta.
	Calculate(t domain.Topology, theta float64) (float64, error)

	// Decompose reports every term contributing to the probability of t.
	Decompose(t domain.Topology, theta float64) (domain.Decomposition, error)
}
