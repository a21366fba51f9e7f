package domain

import (
	"cmp"
	"encoding/binary"
	"math"
	"math/big"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gtprob/internal/newick"
	"go.trai.ch/zerr"
)

// Topology is an immutable gene tree topology stored as a newick vector.
// The zero value is the empty topology, which marks an irreducible rewrite
// and is never a valid tree.
type Topology struct {
	v []int
}

// NewTopology copies v into a Topology. It panics if v is non-empty and not
// a valid newick vector.
func NewTopology(v []int) Topology {
	if len(v) == 0 {
		return Topology{}
	}
	if !newick.IsNewick(v) {
		panic("domain: invalid newick vector " + newick.String(v))
	}
	return Topology{v: slices.Clone(v)}
}

// ParseTopology parses a newick string such as "(1,(2,3))".
func ParseTopology(s string) (Topology, error) {
	v, err := newick.Parse(s)
	if err != nil {
		return Topology{}, zerr.With(zerr.Wrap(err, ErrInvalidTopology.Error()), "newick", s)
	}
	return Topology{v: v}, nil
}

// MustParseTopology is like ParseTopology but panics on malformed input.
func MustParseTopology(s string) Topology {
	return Topology{v: newick.MustParse(s)}
}

// Values returns a copy of the underlying vector.
func (t Topology) Values() []int {
	return slices.Clone(t.v)
}

// At returns the element at position i.
func (t Topology) At(i int) int {
	return t.v[i]
}

// IsEmpty reports whether t is the empty topology.
func (t Topology) IsEmpty() bool {
	return len(t.v) == 0
}

// Size returns the number of elements in the vector, brackets included.
func (t Topology) Size() int {
	return len(t.v)
}

// Lineages returns the total number of lineages over all tips.
func (t Topology) Lineages() int {
	return newick.Lineages(t.v)
}

// Leaves returns the number of tips.
func (t Topology) Leaves() int {
	return newick.Leaves(t.v)
}

func (t Topology) String() string {
	return newick.String(t.v)
}

// Complexity returns the evaluation cost measure of t. See newick.Complexity.
func (t Topology) Complexity() *big.Int {
	return newick.Complexity(t.v)
}

// Denominator returns n(n-1+theta) for the n lineages of t.
func (t Topology) Denominator(theta float64) float64 {
	return newick.Denominator(t.v, theta)
}

// NumberOfLabeledHistories panics if t is not binary.
func (t Topology) NumberOfLabeledHistories() *big.Int {
	return newick.LabeledHistories(t.v)
}

// NumberOfSymmetries panics if t is not binary.
func (t Topology) NumberOfSymmetries() *big.Int {
	return newick.Symmetries(t.v)
}

// IsSimple reports whether t has no nested groups and so has a closed form probability.
func (t Topology) IsSimple() bool {
	return newick.IsSimple(t.v)
}

// IsBinary reports whether every group of t has exactly two children.
func (t Topology) IsBinary() bool {
	return newick.IsBinary(t.v)
}

// SimpleProbability returns the closed form probability of a simple binary topology.
// It panics for any other topology.
func (t Topology) SimpleProbability(theta float64) float64 {
	return newick.SimpleProbability(t.v, theta)
}

// Fingerprint returns a 64-bit content hash of the vector.
func (t Topology) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*len(t.v))
	for _, x := range t.v {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(x))
	}
	return xxhash.Sum64(buf)
}

// Compare orders topologies by vector length first, then element by element.
// It returns -1, 0 or +1.
func (t Topology) Compare(u Topology) int {
	if c := cmp.Compare(len(t.v), len(u.v)); c != 0 {
		return c
	}
	return slices.Compare(t.v, u.v)
}

// Less reports whether t sorts before u.
func (t Topology) Less(u Topology) bool {
	return t.Compare(u) < 0
}

// Equal reports whether t and u hold the same vector.
func (t Topology) Equal(u Topology) bool {
	return slices.Equal(t.v, u.v)
}

// CheckComplexity returns ErrComplexityExceeded when the complexity of t is
// above limit.
func (t Topology) CheckComplexity(limit uint64) error {
	complexity := t.Complexity()
	if complexity.Cmp(new(big.Int).SetUint64(limit)) <= 0 {
		return nil
	}
	err := zerr.With(ErrComplexityExceeded, "topology", t.String())
	err = zerr.With(err, "complexity", complexity.String())
	return zerr.With(err, "max_complexity", limit)
}

// ValidateTheta returns ErrNonPositiveTheta unless theta is finite and positive.
func ValidateTheta(theta float64) error {
	if !(theta > 0) || math.IsInf(theta, 1) {
		return zerr.With(ErrNonPositiveTheta, "theta", theta)
	}
	return nil
}
