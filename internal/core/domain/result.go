package domain

import "math/big"

// Result is the outcome of evaluating one input of a batch.
type Result struct {
	Input       string
	Topology    Topology
	Theta       float64
	Probability float64
	Complexity  *big.Int
	Status      VertexStatus
}

// Inspection lists the structural properties of a topology.
type Inspection struct {
	Topology    Topology
	Vector      []int
	Size        int
	Lineages    int
	Leaves      int
	Binary      bool
	Simple      bool
	Complexity  *big.Int
	Fingerprint uint64
	Theta       float64
	Denominator float64
	// LabeledHistories, Symmetries and RootBranches are unset for
	// non-binary topologies.
	LabeledHistories *big.Int
	Symmetries       *big.Int
	RootBranches     []Topology
	Simpler          []Topology
}

// Stats are the evaluator counters gathered over a run.
type Stats struct {
	Evaluations       uint64
	CacheHits         uint64
	CacheMisses       uint64
	BaseCases         uint64
	Decompositions    uint64
	Terms             uint64
	EvaluationSeconds float64
}
