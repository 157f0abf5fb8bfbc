package csp

// arc pairs a variable with one of its covering constraints. AC-3 works on
// a queue of these.
type arc struct {
	v *Variable
	c Constraint
}

// propagate runs AC-3 until fixpoint. With trigger nil it covers the whole
// problem (the initial pass before search); with a trigger it is scoped to
// the arcs touching that just-changed variable. It returns, per variable,
// the set of values removed from its domain during this call and the blame
// entries added for them, so the caller can undo exactly those changes
// later.
//
// Blame tracks provenance: a removal from v by an arc's constraint depends
// on the current domains of the constraint's other variables, so v is
// blamed on each of those that is assigned, and transitively on whatever
// already shrank the unassigned ones. The search folds a failing
// variable's blame into its conflict set, which is what keeps backjumping
// from skipping an implicated choice point whose pruning reached the
// failure only through a chain of neighbors.
//
// An emptied domain is not an error here: it surfaces in the search when
// the variable has no candidates left to try.
func (p *Problem) propagate(trigger *Variable) (removed map[*Variable][]int, blamed map[*Variable][]*Variable) {
	p.stats.Propagations++

	var queue []arc
	queued := make(map[arc]struct{})
	push := func(a arc) {
		if _, dup := queued[a]; dup {
			return
		}
		queued[a] = struct{}{}
		queue = append(queue, a)
	}

	// Seed with every arc whose variable is unassigned, drawn from the
	// whole constraint set or just the constraints touching the trigger.
	seeds := p.constraints
	if trigger != nil {
		seeds = trigger.constraints
	}
	for _, c := range seeds {
		for _, v := range c.Variables() {
			if !v.assigned {
				push(arc{v, c})
			}
		}
	}

	removed = make(map[*Variable][]int)
	blamed = make(map[*Variable][]*Variable)
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		delete(queued, a)

		dropped := a.v.dom.removeIf(func(value int) bool {
			return !a.c.IsSatisfiable(a.v, value)
		})
		if len(dropped) == 0 {
			continue
		}
		removed[a.v] = append(removed[a.v], dropped...)
		p.stats.ValuesPruned += len(dropped)

		// The check consulted the other variables of the arc's constraint,
		// so the removal is their doing: blame the assigned ones and
		// inherit the blame of the unassigned ones.
		for _, w := range a.c.Variables() {
			if w == a.v {
				continue
			}
			if w.assigned && !a.v.blame.has(w) {
				a.v.blame[w] = struct{}{}
				blamed[a.v] = append(blamed[a.v], w)
			}
			for b := range w.blame {
				if b == a.v || a.v.blame.has(b) {
					continue
				}
				a.v.blame[b] = struct{}{}
				blamed[a.v] = append(blamed[a.v], b)
			}
		}

		// a.v shrank, so consistency previously checked against it may no
		// longer hold for its neighbors: revisit every shared arc.
		for nb := range a.v.neighbors {
			for _, c := range p.constraintsBetween(a.v, nb) {
				push(arc{nb, c})
			}
		}
	}
	return removed, blamed
}
