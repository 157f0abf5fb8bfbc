package csp

// AllDistinct requires every covered variable to take a distinct value. It
// is the one constraint kind that ships with the framework, shared by
// every application (cryptarithm letters, graph coloring pairs).
//
// Its satisfiability check uses forward-checking strength reasoning with
// forced-singleton propagation, not full bipartite matching. That is a
// deliberate approximation: it can call some matching-infeasible
// configurations satisfiable, but it never rejects a feasible one, and the
// search catches anything it lets through. Keep it as is; downstream
// behavior was validated against exactly this strength.
type AllDistinct struct {
	vars []*Variable
}

// NewAllDistinct builds the constraint over the given variables. Register
// it with Problem.AddConstraint before solving.
func NewAllDistinct(vars ...*Variable) *AllDistinct {
	return &AllDistinct{vars: vars}
}

// Variables returns the covered variables in construction order.
func (c *AllDistinct) Variables() []*Variable { return c.vars }

// IsSatisfiable reports whether v taking value can still extend to a fully
// distinct assignment of the group's other unassigned variables.
func (c *AllDistinct) IsSatisfiable(v *Variable, value int) bool {
	if v.assigned {
		return true
	}

	// The value is taken already by a committed member of the group.
	for _, other := range c.vars {
		if other != v && other.assigned && other.value == value {
			return false
		}
	}

	// Work on copies of the other unassigned variables' domains with the
	// tentative value struck out.
	type temp struct {
		values map[int]struct{}
	}
	remaining := make([]*temp, 0, len(c.vars))
	for _, other := range c.vars {
		if other == v || other.assigned {
			continue
		}
		td := &temp{values: make(map[int]struct{}, other.dom.Size())}
		for _, dv := range other.dom.values {
			if dv != value {
				td.values[dv] = struct{}{}
			}
		}
		if len(td.values) == 0 {
			return false
		}
		remaining = append(remaining, td)
	}

	// Commit forced singletons until none remain. A domain emptied along
	// the way proves the assignment unsatisfiable; running out of
	// singletons with every domain still populated is good enough to call
	// it satisfiable.
	for {
		forced := -1
		forcedAt := -1
		for i, td := range remaining {
			if len(td.values) == 1 {
				for fv := range td.values {
					forced = fv
				}
				forcedAt = i
				break
			}
		}
		if forcedAt < 0 {
			return true
		}
		remaining = append(remaining[:forcedAt], remaining[forcedAt+1:]...)
		for _, td := range remaining {
			delete(td.values, forced)
			if len(td.values) == 0 {
				return false
			}
		}
	}
}
