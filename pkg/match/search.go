package match

import "math/rand"

// solve runs an exhaustive depth-first backtracking search for a complete
// valid assignment. Givers are visited in the given order; at each level
// the unused compatible receivers are tried in index order, or in a
// uniformly shuffled order when rng is non-nil.
//
// Returns assigned[giver] = receiver for every giver on success, or nil
// when the whole space has been explored without finding one. The search
// is complete either way: a nil result with a nil rng proves no valid
// assignment exists.
func solve(c *Compatibility, order []int, rng *rand.Rand) []int {
	n := c.Len()
	assigned := make([]int, n)
	for i := range assigned {
		assigned[i] = -1
	}
	used := make([]bool, n)

	if !backtrack(c, order, 0, assigned, used, rng) {
		return nil
	}
	return assigned
}

// backtrack extends a partial assignment by one giver and recurses.
// State is mutated in place and undone on the way back out.
func backtrack(c *Compatibility, order []int, depth int, assigned []int, used []bool, rng *rand.Rand) bool {
	if depth == len(order) {
		return true
	}
	giver := order[depth]

	candidates := make([]int, 0, c.Len())
	for receiver := range used {
		if !used[receiver] && c.Compatible(giver, receiver) {
			candidates = append(candidates, receiver)
		}
	}
	if rng != nil {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, receiver := range candidates {
		assigned[giver] = receiver
		used[receiver] = true
		if backtrack(c, order, depth+1, assigned, used, rng) {
			return true
		}
		assigned[giver] = -1
		used[receiver] = false
	}

	return false
}

// inputOrder returns the identity visitation order [0, 1, ..., n-1].
func inputOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
