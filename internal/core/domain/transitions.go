package domain

import "slices"

// Transition is one coalescent event leading from a topology to a simpler one.
type Transition struct {
	Topology Topology
	// Multiplicity is the lineage count of the tip the event acts on:
	// greater than one for a coalescence inside the tip, one for a
	// singleton merging into its sibling.
	Multiplicity int
}

// Transitions enumerates every event that can happen next, going back in
// time. Each tip of x > 1 lineages can lose one lineage to a coalescence;
// each singleton in a cherry can merge into its sibling. Identical results
// from different tips are reported separately.
func (t Topology) Transitions() []Transition {
	var out []Transition
	for i, x := range t.v {
		switch {
		case x > 1:
			out = append(out, Transition{Topology: t.DecrementSingleton(i), Multiplicity: x})
		case x == 1:
			if r := t.ReduceSingleton(i); !r.IsEmpty() {
				out = append(out, Transition{Topology: r, Multiplicity: 1})
			}
		}
	}
	return out
}

// SimplerTopologies returns the distinct topologies reachable in one event,
// sorted by Compare.
func (t Topology) SimplerTopologies() []Topology {
	ts := t.Transitions()
	out := make([]Topology, 0, len(ts))
	for _, tr := range ts {
		out = append(out, tr.Topology)
	}
	slices.SortFunc(out, Topology.Compare)
	return slices.CompactFunc(out, Topology.Equal)
}
