package newick

import (
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// node is the pointer form of a topology, built only where the counting
// needs subtree structure.
type node struct {
	count    int
	children []*node
}

func buildTree(v []int) *node {
	root := &node{}
	stack := []*node{root}
	for _, x := range v {
		top := stack[len(stack)-1]
		switch x {
		case BracketOpen:
			n := &node{}
			top.children = append(top.children, n)
			stack = append(stack, n)
		case BracketClose:
			stack = stack[:len(stack)-1]
		default:
			top.children = append(top.children, &node{count: x})
		}
	}
	return root
}

// Complexity measures how expensive a topology is to evaluate: the product of
// all counts times the number of tips. It bounds the number of distinct
// sub-topologies a memoized evaluation can visit and is what callers compare
// against a limit before evaluating. The empty vector has complexity zero.
func Complexity(v []int) *big.Int {
	if len(v) == 0 {
		return new(big.Int)
	}
	c := big.NewInt(1)
	var x big.Int
	for _, count := range v {
		if count > 0 {
			c.Mul(c, x.SetInt64(int64(count)))
		}
	}
	return c.Mul(c, x.SetInt64(int64(Leaves(v))))
}

// LabeledHistories counts the rankings of the internal nodes of a binary
// topology that respect ancestry: (k-1)! divided by the product, over every
// internal node, of the number of internal nodes in its subtree.
//
// It panics if v is not binary.
func LabeledHistories(v []int) *big.Int {
	if !IsBinary(v) {
		panic("newick: LabeledHistories requires a binary topology, got " + String(v))
	}
	denom := big.NewInt(1)
	var internal func(n *node) int64
	internal = func(n *node) int64 {
		if len(n.children) == 0 {
			return 0
		}
		size := int64(1)
		for _, c := range n.children {
			size += internal(c)
		}
		denom.Mul(denom, big.NewInt(size))
		return size
	}
	internal(buildTree(v))

	k := int64(Leaves(v))
	h := new(big.Int).MulRange(1, k-1)
	return h.Quo(h, denom)
}

// Symmetries returns 2^s for a binary topology, where s is the number of
// internal nodes whose two subtrees are identical up to child order.
//
// It panics if v is not binary.
func Symmetries(v []int) *big.Int {
	if !IsBinary(v) {
		panic("newick: Symmetries requires a binary topology, got " + String(v))
	}
	var s uint
	var canonical func(n *node) string
	canonical = func(n *node) string {
		if len(n.children) == 0 {
			return strconv.Itoa(n.count)
		}
		keys := make([]string, len(n.children))
		for i, c := range n.children {
			keys[i] = canonical(c)
		}
		if keys[0] == keys[1] {
			s++
		}
		slices.Sort(keys)
		return "(" + strings.Join(keys, ",") + ")"
	}
	canonical(buildTree(v))
	return new(big.Int).Lsh(big.NewInt(1), s)
}
