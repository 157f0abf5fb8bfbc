package csp

// ValueOrdering reorders a variable's candidate values in place before the
// search tries them. It is a pure performance heuristic: it affects search
// order and runtime, never correctness or which assignments are valid.
type ValueOrdering func(values []int)

// Variable is a named cell in a constraint problem. It owns a shrinking
// domain of candidate values and, once the search commits to one, an
// assigned value. Variables are created through Problem.NewVariable or
// Problem.NewAuxVariable and live for the lifetime of their problem; the
// solver only ever mutates domain, value, and conflict-set state.
type Variable struct {
	name     string
	dom      *Domain
	value    int
	assigned bool
	aux      bool
	ordering ValueOrdering

	// constraints and neighbors are wired by Problem.AddConstraint. The
	// constraint graph is fixed after construction, so the adjacency is
	// built eagerly at registration and never invalidated.
	constraints []Constraint
	neighbors   map[*Variable]struct{}

	// conflictSet is working state for the active search: the variables
	// implicated in the most recent failure to assign this variable. It
	// has no meaning outside a running Solve.
	conflictSet conflictSet

	// blame records which assigned variables are responsible for the
	// values currently missing from this variable's domain, directly or
	// through a chain of shrinking neighbors. Propagation adds entries,
	// backtracking removes them again alongside the value restores.
	blame conflictSet
}

// Name returns the variable's identifier, unique within its problem.
func (v *Variable) Name() string { return v.name }

// Domain returns the variable's current candidate values. The returned
// Domain is live: propagation shrinks it and backtracking restores it.
func (v *Variable) Domain() *Domain { return v.dom }

// Value returns the committed assignment and whether one exists.
func (v *Variable) Value() (int, bool) { return v.value, v.assigned }

// Assigned reports whether the search has committed a value.
func (v *Variable) Assigned() bool { return v.assigned }

// Aux reports whether this is an auxiliary variable. Auxiliary variables
// (carry bits and the like) take part in propagation and search but are
// not required to end up assigned for the problem to count as solved.
func (v *Variable) Aux() bool { return v.aux }

// Constraints returns the constraints covering this variable.
func (v *Variable) Constraints() []Constraint { return v.constraints }

// SetValueOrdering installs a per-variable value ordering heuristic. The
// default is the domain's natural order.
func (v *Variable) SetValueOrdering(f ValueOrdering) { v.ordering = f }

// orderedDomain snapshots the current candidates in the order the search
// should try them. The snapshot is independent of the live domain, which
// collapses and is restored while the search iterates.
func (v *Variable) orderedDomain() []int {
	values := v.dom.Values()
	if v.ordering != nil {
		v.ordering(values)
	}
	return values
}

// unassignedDegree counts neighbors without a committed value. Used as the
// tie-break in variable selection.
func (v *Variable) unassignedDegree() int {
	n := 0
	for nb := range v.neighbors {
		if !nb.assigned {
			n++
		}
	}
	return n
}
