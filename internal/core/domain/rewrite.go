package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/gtprob/internal/newick"
)

// FindOpenBefore returns the index of the open bracket enclosing pos, or -1
// when the enclosing group is the implicit root.
func (t Topology) FindOpenBefore(pos int) int {
	depth := 0
	for i := pos - 1; i >= 0; i-- {
		switch t.v[i] {
		case newick.BracketClose:
			depth++
		case newick.BracketOpen:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// FindCloseAfter returns the index of the close bracket enclosing pos, or
// Size() when the enclosing group is the implicit root.
func (t Topology) FindCloseAfter(pos int) int {
	depth := 0
	for i := pos + 1; i < len(t.v); i++ {
		switch t.v[i] {
		case newick.BracketOpen:
			depth++
		case newick.BracketClose:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return len(t.v)
}

// CollapseAt merges the singleton at pos into its sibling tip and removes
// the bracket pair around them: ((1,4),2) becomes (5,2). The result is
// shorter by close-open elements and t is left untouched.
//
// It panics unless t[pos] is 1 and its enclosing pair is a materialized
// cherry of two tips.
func (t Topology) CollapseAt(pos int) Topology {
	if t.v[pos] != 1 {
		panic(fmt.Sprintf("domain: CollapseAt(%d) on %s: element is %d, want 1", pos, t, t.v[pos]))
	}
	open, closing := t.FindOpenBefore(pos), t.FindCloseAfter(pos)
	if open < 0 || closing >= len(t.v) {
		panic(fmt.Sprintf("domain: CollapseAt(%d) on %s: no enclosing bracket pair", pos, t))
	}
	sibling := t.sibling(pos, open, closing)
	if sibling <= 0 {
		panic(fmt.Sprintf("domain: CollapseAt(%d) on %s: sibling is not a tip", pos, t))
	}

	out := make([]int, 0, len(t.v)-(closing-open))
	out = append(out, t.v[:open]...)
	out = append(out, sibling+1)
	out = append(out, t.v[closing+1:]...)
	return Topology{v: out}
}

// ReduceSingleton applies CollapseAt at pos when the singleton can be merged
// in isolation. It returns the empty topology when pos is not enclosed by a
// materialized cherry; callers must treat that as "not applicable here".
//
// It panics unless t[pos] is 1.
func (t Topology) ReduceSingleton(pos int) Topology {
	if t.v[pos] != 1 {
		panic(fmt.Sprintf("domain: ReduceSingleton(%d) on %s: element is %d, want 1", pos, t, t.v[pos]))
	}
	open, closing := t.FindOpenBefore(pos), t.FindCloseAfter(pos)
	if open < 0 || closing >= len(t.v) {
		return Topology{}
	}
	if t.sibling(pos, open, closing) <= 0 {
		return Topology{}
	}
	return t.CollapseAt(pos)
}

// DecrementSingleton removes one lineage from the tip at pos.
//
// It panics unless t[pos] is greater than 1.
func (t Topology) DecrementSingleton(pos int) Topology {
	if t.v[pos] <= 1 {
		panic(fmt.Sprintf("domain: DecrementSingleton(%d) on %s: element is %d, want > 1", pos, t, t.v[pos]))
	}
	out := t.Values()
	out[pos]--
	return Topology{v: out}
}

// sibling returns the tip next to pos inside (open, closing): the left
// neighbour when it is a count, else the right one. Zero means the group is
// not a cherry of two tips.
func (t Topology) sibling(pos, open, closing int) int {
	if closing-open != 3 {
		return 0
	}
	if pos-1 > open && t.v[pos-1] > 0 {
		return t.v[pos-1]
	}
	if pos+1 < closing && t.v[pos+1] > 0 {
		return t.v[pos+1]
	}
	return 0
}

// RootBranches splits t into the two subtrees hanging from its root:
// (1,(2,3)) gives (1) and (2,3). A tip becomes the one-element vector (x),
// which is not itself a valid topology.
//
// It panics unless t is binary.
func (t Topology) RootBranches() (Topology, Topology) {
	if !t.IsBinary() {
		panic(fmt.Sprintf("domain: RootBranches on %s: topology is not binary", t))
	}
	end := 0
	if t.v[0] == newick.BracketOpen {
		end = t.FindCloseAfter(0)
	}
	return branch(t.v[:end+1]), branch(t.v[end+1:])
}

func branch(v []int) Topology {
	if len(v) > 1 {
		v = v[1 : len(v)-1]
	}
	return Topology{v: slices.Clone(v)}
}
