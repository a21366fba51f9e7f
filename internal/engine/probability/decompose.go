// Package probability evaluates the probability of a gene tree topology
// under the neutral coalescent model.
package probability

import "go.trai.ch/gtprob/internal/core/domain"

// CoefficientPairs returns the topologies one event away from t together
// with the weight of each event. With d = t.Denominator(theta), a singleton
// merging into its sibling has weight theta/d and a coalescence in a tip of
// f lineages has weight f(f-1)/d. The two slices have equal length.
func CoefficientPairs(t domain.Topology, theta float64) ([]float64, []domain.Topology) {
	d := t.Denominator(theta)
	transitions := t.Transitions()

	coefficients := make([]float64, len(transitions))
	topologies := make([]domain.Topology, len(transitions))
	for i, tr := range transitions {
		coefficients[i] = coefficient(tr.Multiplicity, theta, d)
		topologies[i] = tr.Topology
	}
	return coefficients, topologies
}

func coefficient(f int, theta, d float64) float64 {
	if f == 1 {
		return theta / d
	}
	return float64(f) * float64(f-1) / d
}
