package cryptarithm

import "github.com/gitrdm/gocsp/pkg/csp"

// columnSum constrains one addition column: the sum of the left-side
// variables (carry-in plus addend digits) must equal the weighted sum of
// the right-side variables (column digit, weight 1, plus carry-out,
// weight 10).
type columnSum struct {
	left    []*csp.Variable
	right   []*csp.Variable
	weights []int // weights[i] multiplies right[i]
}

func (c *columnSum) Variables() []*csp.Variable {
	vars := make([]*csp.Variable, 0, len(c.left)+len(c.right))
	vars = append(vars, c.left...)
	vars = append(vars, c.right...)
	return vars
}

// IsSatisfiable reports whether any combination of current domain values,
// with v pinned to value, balances the column. Variables appearing on both
// sides (or twice on one side) are enumerated independently, which can
// only over-approximate satisfiability; the propagator tolerates that.
func (c *columnSum) IsSatisfiable(v *csp.Variable, value int) bool {
	domainOf := func(x *csp.Variable) []int {
		if x == v {
			return []int{value}
		}
		return x.Domain().Values()
	}

	leftSums := reachableSums(c.left, nil, domainOf)
	rightSums := reachableSums(c.right, c.weights, domainOf)
	for s := range leftSums {
		if _, ok := rightSums[s]; ok {
			return true
		}
	}
	return false
}

// reachableSums folds the variables' domains into the set of achievable
// weighted sums. A nil weights slice means unit weights.
func reachableSums(vars []*csp.Variable, weights []int, domainOf func(*csp.Variable) []int) map[int]struct{} {
	sums := map[int]struct{}{0: {}}
	for i, x := range vars {
		weight := 1
		if weights != nil {
			weight = weights[i]
		}
		next := make(map[int]struct{})
		for s := range sums {
			for _, val := range domainOf(x) {
				next[s+val*weight] = struct{}{}
			}
		}
		sums = next
	}
	return sums
}
