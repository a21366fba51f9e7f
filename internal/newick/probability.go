package newick

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Denominator returns the total event weight n(n-1+theta) of a topology with
// n lineages: n(n-1) ordered pairs that may coalesce plus theta per lineage.
func Denominator(v []int, theta float64) float64 {
	n := float64(Lineages(v))
	return n * (n - 1 + theta)
}

// SimpleProbability returns the probability of the binary simple topology
// (a,b) under the neutral model with parameter theta.
//
// Going back in time from state (i,j) with n=i+j lineages, a tip of i
// lineages coalesces with weight i(i-1), a singleton tip merges into its
// sibling with weight theta, and both are divided by n(n-1+theta). Once the
// two tips have merged, a single tip of m lineages reaches its common
// ancestor with probability prod_{k=1}^{m-1} k/(k+theta). Summing over the
// a+b states in which a singleton merges gives a closed form in
// log-gamma terms.
//
// Work and memory grow with a+b, so callers bound it through Complexity.
// It panics if v is not a simple binary topology or theta is not positive.
func SimpleProbability(v []int, theta float64) float64 {
	if !IsSimple(v) || !IsBinary(v) {
		panic("newick: SimpleProbability requires a simple binary topology, got " + String(v))
	}
	if !(theta > 0) {
		panic("newick: SimpleProbability requires a positive theta")
	}
	a, b := v[0], v[1]
	terms := make([]float64, 0, a+b)
	for j := 1; j <= b; j++ {
		terms = append(terms, logMerge(a, b, j, theta))
	}
	for i := 1; i <= a; i++ {
		terms = append(terms, logMerge(b, a, i, theta))
	}
	return math.Exp(floats.LogSumExp(terms))
}

// logMerge is the log weight of every history of (x,y) in which the x tip
// coalesces down to one lineage and merges into the y tip while the latter
// holds j lineages, times the probability of the merged tip thereafter.
func logMerge(x, y, j int, theta float64) float64 {
	fx, fy, fj, fn := float64(x), float64(y), float64(j), float64(x+y)

	orders := lchoose(x-1+y-j, x-1)
	coalescences := lgamma(fx+1) + lgamma(fx) + lgamma(fy+1) + lgamma(fy) - lgamma(fj+1) - lgamma(fj)
	denominators := lgamma(fn+1) - lgamma(fj+1) + lgamma(fn+theta) - lgamma(fj+theta)
	single := lgamma(fj+1) + lgamma(1+theta) - lgamma(fj+1+theta)

	return orders + coalescences - denominators + math.Log(theta) + single
}

func lchoose(n, k int) float64 {
	return lgamma(float64(n+1)) - lgamma(float64(k+1)) - lgamma(float64(n-k+1))
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
