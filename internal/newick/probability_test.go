package newick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gtprob/internal/newick"
	"gonum.org/v1/gonum/floats/scalar"
)

// cherryByRecursion walks every history of (a,b) without memoization.
func cherryByRecursion(a, b int, theta float64) float64 {
	single := func(m int) float64 {
		p := 1.0
		for k := 1; k < m; k++ {
			p *= float64(k) / (float64(k) + theta)
		}
		return p
	}
	var rec func(i, j int) float64
	rec = func(i, j int) float64 {
		n := float64(i + j)
		p := 0.0
		if i > 1 {
			p += float64(i*(i-1)) * rec(i-1, j)
		}
		if j > 1 {
			p += float64(j*(j-1)) * rec(i, j-1)
		}
		if i == 1 {
			p += theta * single(j+1)
		}
		if j == 1 {
			p += theta * single(i+1)
		}
		return p / (n * (n - 1 + theta))
	}
	return rec(a, b)
}

func TestDenominator(t *testing.T) {
	assert.InDelta(t, 9.0, newick.Denominator(newick.MustParse("(1,2)"), 1), 1e-15)
	assert.InDelta(t, 7*(6+0.5), newick.Denominator(newick.MustParse("((2,1),(1,3))"), 0.5), 1e-12)
}

func TestSimpleProbability_Known(t *testing.T) {
	for _, theta := range []float64{0.1, 0.5, 1, 2.5, 10} {
		want := theta / ((1 + theta) * (1 + theta))
		got := newick.SimpleProbability([]int{1, 1}, theta)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-14, 1e-12), "theta=%v got %v want %v", theta, got, want)
	}

	got := newick.SimpleProbability([]int{1, 2}, 1)
	assert.True(t, scalar.EqualWithinAbsOrRel(got, 5.0/54.0, 1e-14, 1e-12), "got %v", got)
	got = newick.SimpleProbability([]int{2, 1}, 1)
	assert.True(t, scalar.EqualWithinAbsOrRel(got, 5.0/54.0, 1e-14, 1e-12), "got %v", got)
}

func TestSimpleProbability_MatchesRecursion(t *testing.T) {
	for _, c := range [][2]int{{1, 3}, {2, 2}, {3, 4}, {5, 2}, {6, 6}} {
		for _, theta := range []float64{0.3, 1, 4} {
			got := newick.SimpleProbability([]int{c[0], c[1]}, theta)
			want := cherryByRecursion(c[0], c[1], theta)
			assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-14, 1e-10),
				"(%d,%d) theta=%v got %v want %v", c[0], c[1], theta, got, want)
		}
	}
}

func TestSimpleProbability_Range(t *testing.T) {
	for _, c := range [][2]int{{1, 1}, {1, 50}, {40, 40}, {200, 3}} {
		p := newick.SimpleProbability([]int{c[0], c[1]}, 1.5)
		assert.Greater(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestSimpleProbability_Panics(t *testing.T) {
	assert.Panics(t, func() { newick.SimpleProbability(newick.MustParse("(1,(1,1))"), 1) })
	assert.Panics(t, func() { newick.SimpleProbability(newick.MustParse("(1,2,3)"), 1) })
	assert.Panics(t, func() { newick.SimpleProbability([]int{1, 1}, 0) })
}
