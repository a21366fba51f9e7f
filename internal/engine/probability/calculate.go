package probability

import (
	"go.trai.ch/gtprob/internal/adapters/logger"  //nolint:depguard // Default collaborators
	"go.trai.ch/gtprob/internal/adapters/metrics" //nolint:depguard // Default collaborators
	"go.trai.ch/gtprob/internal/adapters/store"   //nolint:depguard // Default collaborators
	"go.trai.ch/gtprob/internal/core/domain"
)

// CalculateProbability parses newick and returns its probability for theta,
// using a fresh in-memory store. Topologies above domain.DefaultMaxComplexity
// are rejected with domain.ErrComplexityExceeded.
func CalculateProbability(newick string, theta float64) (float64, error) {
	t, err := domain.ParseTopology(newick)
	if err != nil {
		return 0, err
	}
	if err := t.CheckComplexity(domain.DefaultMaxComplexity); err != nil {
		return 0, err
	}
	return NewEvaluator(store.NewFactory(), metrics.New(), logger.New()).Calculate(t, theta)
}
