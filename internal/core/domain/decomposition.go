package domain

// Term is one summand of a decomposed probability.
type Term struct {
	Topology     Topology
	Multiplicity int
	Coefficient  float64
	// Probability is the probability of Topology on its own.
	Probability float64
	// Reference is Probability recomputed with an unshared store. It is
	// zero unless the decomposition was compared.
	Reference float64
}

// Contribution returns Coefficient * Probability.
func (t Term) Contribution() float64 {
	return t.Coefficient * t.Probability
}

// Difference returns Probability - Reference.
func (t Term) Difference() float64 {
	return t.Probability - t.Reference
}

// Decomposition shows how the probability of a topology is assembled from
// the probabilities of the topologies one event away.
type Decomposition struct {
	Topology    Topology
	Theta       float64
	Denominator float64
	// Simple is set when Probability comes from the closed form and Terms is empty.
	Simple      bool
	Probability float64
	Terms       []Term
	// Compared is set when every probability was recomputed independently.
	Compared  bool
	Reference float64
}

// Difference returns Probability - Reference.
func (d Decomposition) Difference() float64 {
	return d.Probability - d.Reference
}
