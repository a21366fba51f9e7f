package newick

// IsNewick reports whether v is a well-formed topology vector: non-empty,
// only positive counts and bracket sentinels, balanced brackets and at least
// two children in every group including the implicit root.
func IsNewick(v []int) bool {
	return checkGroups(v, func(children int) bool { return children >= 2 })
}

// IsBinary reports whether v is a valid topology with exactly two children
// in every group.
func IsBinary(v []int) bool {
	return checkGroups(v, func(children int) bool { return children == 2 })
}

// IsSimple reports whether v is a valid topology without nested groups.
// Simple topologies have a closed-form probability.
func IsSimple(v []int) bool {
	if !IsNewick(v) {
		return false
	}
	for _, x := range v {
		if x < 0 {
			return false
		}
	}
	return true
}

func checkGroups(v []int, accept func(children int) bool) bool {
	if len(v) == 0 {
		return false
	}
	// children per open group; index 0 is the implicit root
	counts := []int{0}
	for _, x := range v {
		top := len(counts) - 1
		switch {
		case x > 0:
			counts[top]++
		case x == BracketOpen:
			counts[top]++
			counts = append(counts, 0)
		case x == BracketClose:
			if top == 0 || !accept(counts[top]) {
				return false
			}
			counts = counts[:top]
		default:
			return false
		}
	}
	return len(counts) == 1 && accept(counts[0])
}

// Lineages returns the total number of lineages, the sum of all counts.
func Lineages(v []int) int {
	n := 0
	for _, x := range v {
		if x > 0 {
			n += x
		}
	}
	return n
}

// Leaves returns the number of tips, the number of counts in v.
func Leaves(v []int) int {
	k := 0
	for _, x := range v {
		if x > 0 {
			k++
		}
	}
	return k
}
