/*
Package newick reads, writes and classifies bracketed lineage-count
topologies such as "(1,(2,3))" and provides the combinatorial quantities and
closed-form probabilities that the coalescent evaluator builds on.

A topology is held as a compact integer vector. Positive values are lineage
counts at a tip; BracketOpen and BracketClose mark nested groups. The
outermost pair of brackets is implicit and never stored, so "(1,(2,3))"
becomes

	[1, -1, 2, 3, -2]

Commas are implied by adjacency. Every group, the implicit root group
included, holds at least two children. A binary topology holds exactly two
children in every group; a simple topology has no stored brackets at all.
*/
package newick
