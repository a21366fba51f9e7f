package probability

import (
	"time"

	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evaluator computes topology probabilities, memoizing every sub-topology
// in a store that lives for one top-level call.
type Evaluator struct {
	stores  ports.StoreFactory
	metrics ports.Metrics
	logger  ports.Logger
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(stores ports.StoreFactory, metrics ports.Metrics, logger ports.Logger) *Evaluator {
	return &Evaluator{
		stores:  stores,
		metrics: metrics,
		logger:  logger,
	}
}

// Calculate returns the probability of t for the given theta.
func (e *Evaluator) Calculate(t domain.Topology, theta float64) (float64, error) {
	return e.CalculateWith(t, theta, e.stores.NewStore())
}

// CalculateWith is like Calculate but memoizes into s, which may already
// hold correct probabilities for the same theta.
func (e *Evaluator) CalculateWith(t domain.Topology, theta float64, s ports.ProbabilityStore) (float64, error) {
	if err := validate(t, theta); err != nil {
		return 0, err
	}

	start := time.Now()
	p := e.probability(t, theta, s)
	elapsed := time.Since(start)
	e.metrics.ObserveEvaluation(elapsed)
	e.logger.Debug("evaluated topology",
		"topology", t.String(),
		"theta", theta,
		"probability", p,
		"stored", s.Len(),
		"elapsed", elapsed,
	)

	if p == 0 {
		return 0, zerr.With(domain.ErrProbabilityUnderflow, "topology", t.String())
	}
	return p, nil
}

// Decompose evaluates t and reports the contribution of every topology one
// event away. All terms share one store.
func (e *Evaluator) Decompose(t domain.Topology, theta float64) (domain.Decomposition, error) {
	if err := validate(t, theta); err != nil {
		return domain.Decomposition{}, err
	}

	d := domain.Decomposition{
		Topology:    t,
		Theta:       theta,
		Denominator: t.Denominator(theta),
	}
	if t.IsSimple() {
		d.Simple = true
		d.Probability = t.SimpleProbability(theta)
		return d, nil
	}

	s := e.stores.NewStore()
	for _, tr := range t.Transitions() {
		term := domain.Term{
			Topology:     tr.Topology,
			Multiplicity: tr.Multiplicity,
			Coefficient:  coefficient(tr.Multiplicity, theta, d.Denominator),
			Probability:  e.probability(tr.Topology, theta, s),
		}
		d.Terms = append(d.Terms, term)
		d.Probability += term.Contribution()
	}
	e.logger.Debug("decomposed topology", "topology", t.String(), "terms", len(d.Terms), "stored", s.Len())

	if d.Probability == 0 {
		return d, zerr.With(domain.ErrProbabilityUnderflow, "topology", t.String())
	}
	return d, nil
}

func (e *Evaluator) probability(t domain.Topology, theta float64, s ports.ProbabilityStore) float64 {
	if p := s.Find(t); p != 0 {
		e.metrics.CacheHit()
		return p
	}
	e.metrics.CacheMiss()

	var p float64
	if t.IsSimple() {
		e.metrics.BaseCase()
		p = t.SimpleProbability(theta)
	} else {
		coefficients, topologies := CoefficientPairs(t, theta)
		if len(topologies) == 0 {
			panic("probability: no transitions from non-simple topology " + t.String())
		}
		e.metrics.Decomposition(len(topologies))
		for i, sub := range topologies {
			p += coefficients[i] * e.probability(sub, theta, s)
		}
	}

	// An underflowed sum cannot be stored since zero marks an absent entry.
	if p > 0 {
		s.Store(t, p)
	}
	return p
}

func validate(t domain.Topology, theta float64) error {
	if t.IsEmpty() {
		return domain.ErrEmptyTopology
	}
	if !t.IsBinary() {
		return zerr.With(domain.ErrNonBinaryTopology, "topology", t.String())
	}
	return domain.ValidateTheta(theta)
}
