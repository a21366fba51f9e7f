package newick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gtprob/internal/newick"
)

func TestIsNewick_Vectors(t *testing.T) {
	tests := []struct {
		name string
		v    []int
		want bool
	}{
		{"empty", nil, false},
		{"cherry", []int{1, 2}, true},
		{"single tip", []int{5}, false},
		{"zero count", []int{0, 1}, false},
		{"unknown sentinel", []int{1, -3, 2}, false},
		{"unbalanced open", []int{1, -1, 2, 3}, false},
		{"unbalanced close", []int{1, 2, -2}, false},
		{"group of one", []int{1, -1, 2, -2}, false},
		{"nested", []int{1, -1, 2, 3, -2}, true},
		{"star", []int{1, 2, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newick.IsNewick(tt.v))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in     string
		binary bool
		simple bool
	}{
		{"(1,1)", true, true},
		{"(4,7)", true, true},
		{"(1,2,3)", false, true},
		{"(1,(2,3))", true, false},
		{"((1,1),(1,1),2)", false, false},
		{"((1,1,1),2)", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := newick.MustParse(tt.in)
			assert.Equal(t, tt.binary, newick.IsBinary(v), "binary")
			assert.Equal(t, tt.simple, newick.IsSimple(v), "simple")
		})
	}
}

func TestLineagesAndLeaves(t *testing.T) {
	v := newick.MustParse("((2,1),(1,3))")
	assert.Equal(t, 7, newick.Lineages(v))
	assert.Equal(t, 4, newick.Leaves(v))
}
