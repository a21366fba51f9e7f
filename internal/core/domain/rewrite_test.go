package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/newick"
)

func TestFindBrackets(t *testing.T) {
	// ((1,(2,3)),(1,1))
	topo := domain.MustParseTopology("((1,(2,3)),(1,1))")
	assert.Equal(t, []int{-1, 1, -1, 2, 3, -2, -2, -1, 1, 1, -2}, topo.Values())

	tests := []struct {
		pos, open, closing int
	}{
		{1, 0, 6},
		{3, 2, 5},
		{4, 2, 5},
		{8, 7, 10},
		{9, 7, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.open, topo.FindOpenBefore(tt.pos), "open before %d", tt.pos)
		assert.Equal(t, tt.closing, topo.FindCloseAfter(tt.pos), "close after %d", tt.pos)
	}
}

func TestFindBrackets_VirtualRoot(t *testing.T) {
	topo := domain.MustParseTopology("(1,(1,4))")

	assert.Equal(t, -1, topo.FindOpenBefore(0))
	assert.Equal(t, topo.Size(), topo.FindCloseAfter(0))
}

func TestCollapseAt(t *testing.T) {
	tests := []struct {
		in   string
		pos  int
		want string
	}{
		{"(1,(1,4))", 2, "(1,5)"},
		{"((1,4),2)", 1, "(5,2)"},
		{"((4,1),2)", 2, "(5,2)"},
		{"((1,(2,3)),(1,1))", 8, "((1,(2,3)),2)"},
		{"(3,(2,(1,7)))", 5, "(3,(2,8))"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			topo := domain.MustParseTopology(tt.in)
			before := topo.Values()
			open, closing := topo.FindOpenBefore(tt.pos), topo.FindCloseAfter(tt.pos)

			got := topo.CollapseAt(tt.pos)

			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, topo.Size()-(closing-open), got.Size())
			assert.True(t, newick.IsNewick(got.Values()))
			assert.Equal(t, before, topo.Values(), "source must not change")
		})
	}
}

func TestCollapseAt_Panics(t *testing.T) {
	topo := domain.MustParseTopology("((1,(2,3)),(1,1))")

	assert.Panics(t, func() { topo.CollapseAt(3) }, "not a singleton")
	assert.Panics(t, func() { topo.CollapseAt(1) }, "sibling is a group")
	assert.Panics(t, func() { domain.MustParseTopology("(1,(2,3))").CollapseAt(0) }, "root pair")
}

func TestReduceSingleton(t *testing.T) {
	tests := []struct {
		in   string
		pos  int
		want string
	}{
		{"(1,(1,4))", 2, "(1,5)"},
		{"(1,(1,4))", 0, ""},
		{"(1,1)", 0, ""},
		{"(1,1)", 1, ""},
		{"((1,(2,3)),(1,1))", 1, ""},
		{"((1,(2,3)),(1,1))", 9, "((1,(2,3)),2)"},
		{"(2,(1,1,1))", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := domain.MustParseTopology(tt.in).ReduceSingleton(tt.pos)
			assert.Equal(t, tt.want == "", got.IsEmpty())
			assert.Equal(t, tt.want, got.String())
		})
	}

	assert.Panics(t, func() { domain.MustParseTopology("(2,(1,1))").ReduceSingleton(0) })
}

func TestDecrementSingleton(t *testing.T) {
	topo := domain.MustParseTopology("(1,(2,3))")

	assert.Equal(t, "(1,(2,2))", topo.DecrementSingleton(3).String())
	assert.Equal(t, "(1,(1,3))", topo.DecrementSingleton(2).String())
	assert.Equal(t, "(1,(2,3))", topo.String())
	assert.Panics(t, func() { topo.DecrementSingleton(0) })
	assert.Panics(t, func() { topo.DecrementSingleton(1) })
}

func TestReduceSingleton_KeepsTopologiesValid(t *testing.T) {
	for _, s := range newick.ValidExamples() {
		topo := domain.MustParseTopology(s)
		for i, x := range topo.Values() {
			if x != 1 {
				continue
			}
			got := topo.ReduceSingleton(i)
			if got.IsEmpty() {
				continue
			}
			assert.True(t, newick.IsNewick(got.Values()), "%s at %d gave %v", s, i, got.Values())
			assert.Less(t, got.Size(), topo.Size())
			assert.Equal(t, topo.Lineages(), got.Lineages())
		}
	}
}

func TestRootBranches(t *testing.T) {
	tests := []struct {
		in          string
		left, right string
	}{
		{"(1,2)", "(1)", "(2)"},
		{"(1,(2,3))", "(1)", "(2,3)"},
		{"((2,3),4)", "(2,3)", "(4)"},
		{"((1,(2,3)),(1,1))", "(1,(2,3))", "(1,1)"},
		{"(((1,1),2),((3,4),5))", "((1,1),2)", "((3,4),5)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			topo := domain.MustParseTopology(tt.in)
			before := topo.Values()

			left, right := topo.RootBranches()

			assert.Equal(t, tt.left, left.String())
			assert.Equal(t, tt.right, right.String())
			assert.Equal(t, topo.Lineages(), left.Lineages()+right.Lineages())
			assert.Equal(t, before, topo.Values(), "source must not change")
		})
	}
}

func TestRootBranches_Panics(t *testing.T) {
	tests := []string{"(1,2,3)", "((1,2,3),4)"}
	for _, in := range tests {
		topo := domain.MustParseTopology(in)
		assert.Panics(t, func() { topo.RootBranches() }, in)
	}
}
