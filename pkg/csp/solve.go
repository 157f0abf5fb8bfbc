package csp

import "fmt"

// conflictSet is the set of variables implicated in a search failure. A
// frame that cannot assign its variable returns one so ancestor frames can
// tell whether they were involved at all.
type conflictSet map[*Variable]struct{}

func (s conflictSet) has(v *Variable) bool {
	_, ok := s[v]
	return ok
}

// Solve finds an assignment satisfying every constraint. It first runs
// AC-3 over the whole problem to prune obviously dead values; if that
// alone empties some variable's domain the problem is unsatisfiable and
// the backtracking search is never entered. Otherwise the search runs to
// either success (nil) or exhaustion (ErrNoSolution).
//
// On success every non-auxiliary variable has a committed value, readable
// via Variable.Value. On failure variable state is left as the failed
// search left it and should not be interpreted.
func (p *Problem) Solve() error {
	p.stats = Stats{}
	for _, v := range p.order {
		v.blame = make(conflictSet)
	}

	p.propagate(nil)
	for _, v := range p.order {
		if v.dom.Empty() {
			return ErrNoSolution
		}
	}

	if solved, _ := p.search(0); !solved {
		return ErrNoSolution
	}
	return nil
}

// search is one frame of the backtracking search. It returns either
// (true, nil) when every non-auxiliary variable below this frame ended up
// assigned, or (false, conflicts) naming the variables implicated in the
// failure.
func (p *Problem) search(depth int) (bool, conflictSet) {
	p.stats.Nodes++

	if p.Solved() {
		return true, nil
	}

	cur := p.selectUnassigned()
	// Initial conflict candidates should no value work out for cur: its
	// assigned neighbors, plus every assignment blamed for the values
	// already pruned from its domain. The blame entries cover pruning that
	// arrived through chains of unassigned neighbors, which neighbor
	// inspection alone would miss.
	cur.conflictSet = make(conflictSet)
	for nb := range cur.neighbors {
		if nb.assigned {
			cur.conflictSet[nb] = struct{}{}
		}
	}
	for b := range cur.blame {
		cur.conflictSet[b] = struct{}{}
	}

	for _, value := range cur.orderedDomain() {
		// The trial assignment collapses the domain to the singleton;
		// everything removed here and by the scoped propagation below goes
		// into one undo record per affected variable.
		removed := map[*Variable][]int{cur: p.assign(cur, value)}
		pruned, blamed := p.propagate(cur)
		for v, vals := range pruned {
			removed[v] = append(removed[v], vals...)
		}

		solved, conflicts := p.search(depth + 1)
		if solved {
			return true, nil
		}

		for v, vals := range removed {
			v.dom.restore(vals)
		}
		for v, srcs := range blamed {
			for _, b := range srcs {
				delete(v.blame, b)
			}
		}
		cur.value, cur.assigned = 0, false

		// Backjump rule: if cur is not implicated in the deeper failure,
		// no value choice at this depth can matter. Hand the conflict set
		// straight to the caller instead of trying the remaining values.
		if p.backjump && depth > 0 && !conflicts.has(cur) {
			p.stats.Backjumps++
			return false, conflicts
		}

		for v := range conflicts {
			if v != cur {
				cur.conflictSet[v] = struct{}{}
			}
		}
	}

	// Every candidate failed (or the domain was already empty). The
	// accumulated conflict set tells the caller who was implicated.
	return false, cur.conflictSet
}

// assign commits value to v and returns the other values removed from the
// domain by the collapse. Assigning a value outside the current domain is
// a bug in the search loop itself, never a data condition, so it fails
// loudly.
func (p *Problem) assign(v *Variable, value int) []int {
	if !v.dom.Has(value) {
		panic(fmt.Sprintf("csp: assign %d to %s: not in domain %s", value, v.name, v.dom))
	}
	v.value, v.assigned = value, true
	return v.dom.collapseTo(value)
}

// selectUnassigned picks the next variable to try: smallest current domain
// first (most constrained), ties broken by the larger number of unassigned
// neighbors (most future pruning). Ties on both resolve to registration
// order, which keeps runs deterministic.
func (p *Problem) selectUnassigned() *Variable {
	var choice *Variable
	for _, v := range p.order {
		if v.assigned {
			continue
		}
		switch {
		case choice == nil:
			choice = v
		case v.dom.Size() < choice.dom.Size():
			choice = v
		case v.dom.Size() == choice.dom.Size() && v.unassignedDegree() > choice.unassignedDegree():
			choice = v
		}
	}
	if choice == nil {
		panic("csp: selectUnassigned called with no unassigned variables")
	}
	return choice
}
