// Package csp is a generic finite-domain constraint-satisfaction engine.
// A Problem holds named variables with discrete candidate domains and a
// set of constraints over them; Solve finds an assignment satisfying every
// constraint or reports ErrNoSolution.
//
// The engine is domain-agnostic. Applications define concrete variables
// and constraints (see the cryptarithm and wordsquare packages) but
// contribute no search or propagation logic of their own: the solver
// combines AC-3 arc-consistency propagation with backtracking search,
// conflict-directed backjumping, and most-constrained-variable ordering.
//
// A Problem and its variables and constraints are built once, up front;
// solving only mutates domains and assignments, and a Problem must not be
// solved from two goroutines at once.
package csp

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned by Solve when the initial propagation or the
// exhaustive search proves the problem unsatisfiable. It is a defined
// outcome, not an internal fault.
var ErrNoSolution = errors.New("csp: no solution")

// Problem is the container for a constraint-satisfaction problem: the
// variable set, the constraint set, and the solver configuration.
type Problem struct {
	vars        map[string]*Variable
	order       []*Variable // registration order, for deterministic iteration
	constraints []Constraint

	// disjoint enables the O(1) neighbor-constraint lookup in AC-3. Set it
	// only when any two variables share at most one constraint; it is a
	// lookup strategy and must not change propagation results.
	disjoint bool

	// backjump gates the conflict-directed skip-level backtrack. Disabling
	// it never changes the outcome, only the search cost; the switch
	// exists so tests can verify exactly that.
	backjump bool

	stats Stats
}

// NewProblem creates an empty problem. Populate it with NewVariable,
// NewAuxVariable, and AddConstraint before calling Solve.
func NewProblem() *Problem {
	return &Problem{
		vars:     make(map[string]*Variable),
		backjump: true,
	}
}

// SetDisjointConstraints declares that any two variables are covered by at
// most one shared constraint, enabling a faster neighbor-arc lookup during
// propagation. Declaring it for a problem where the property does not hold
// can miss propagation work; leave it off when in doubt.
func (p *Problem) SetDisjointConstraints(disjoint bool) { p.disjoint = disjoint }

// SetBackjumping toggles conflict-directed backjumping, which is on by
// default. Turning it off never changes the outcome, only the amount of
// search performed; the switch exists so that equivalence can be tested.
func (p *Problem) SetBackjumping(enabled bool) { p.backjump = enabled }

// NewVariable creates and registers a variable with the given initial
// domain. Names must be unique within the problem; a duplicate name is a
// construction bug and panics.
func (p *Problem) NewVariable(name string, dom *Domain) *Variable {
	return p.newVariable(name, dom, false)
}

// NewAuxVariable creates a variable that participates in propagation and
// search but does not need a committed value for the problem to count as
// solved (a carry bit, for example).
func (p *Problem) NewAuxVariable(name string, dom *Domain) *Variable {
	return p.newVariable(name, dom, true)
}

func (p *Problem) newVariable(name string, dom *Domain, aux bool) *Variable {
	if _, dup := p.vars[name]; dup {
		panic(fmt.Sprintf("csp: duplicate variable %q", name))
	}
	if dom == nil {
		dom = NewDomain()
	}
	v := &Variable{
		name:      name,
		dom:       dom,
		aux:       aux,
		neighbors: make(map[*Variable]struct{}),
		blame:     make(conflictSet),
	}
	p.vars[name] = v
	p.order = append(p.order, v)
	return v
}

// Variable returns the variable registered under name, or nil.
func (p *Problem) Variable(name string) *Variable { return p.vars[name] }

// Variables returns all variables in registration order.
func (p *Problem) Variables() []*Variable {
	out := make([]*Variable, len(p.order))
	copy(out, p.order)
	return out
}

// AddConstraint registers a constraint. Registration wires the reverse
// link from every covered variable back to the constraint and extends the
// neighbor adjacency, so it must happen before Solve. A constraint that
// covers no variables, or covers a variable belonging to a different
// problem, is a contract violation and is rejected.
func (p *Problem) AddConstraint(c Constraint) error {
	if c == nil {
		return errors.New("csp: nil constraint")
	}
	covered := c.Variables()
	if len(covered) == 0 {
		return errors.New("csp: constraint covers no variables")
	}
	for _, v := range covered {
		if p.vars[v.name] != v {
			return fmt.Errorf("csp: constraint covers unregistered variable %q", v.name)
		}
	}
	p.constraints = append(p.constraints, c)
	for _, v := range covered {
		v.constraints = append(v.constraints, c)
		for _, other := range covered {
			if other != v {
				v.neighbors[other] = struct{}{}
			}
		}
	}
	return nil
}

// Constraints returns the registered constraints.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.constraints))
	copy(out, p.constraints)
	return out
}

// Solved reports whether every non-auxiliary variable has a committed
// value.
func (p *Problem) Solved() bool {
	for _, v := range p.order {
		if !v.aux && !v.assigned {
			return false
		}
	}
	return true
}

// Stats returns counters from the most recent Solve.
func (p *Problem) Stats() Stats { return p.stats }

// constraintsBetween returns the constraints covering both x and y. With
// the disjoint-constraints optimization it stops at the first shared
// constraint, since at most one can exist; otherwise it scans all of x's
// constraints. Both paths yield identical propagation results.
func (p *Problem) constraintsBetween(x, y *Variable) []Constraint {
	if p.disjoint {
		for _, c := range x.constraints {
			if covers(c, y) {
				return []Constraint{c}
			}
		}
		return nil
	}
	var shared []Constraint
	for _, c := range x.constraints {
		if covers(c, y) {
			shared = append(shared, c)
		}
	}
	return shared
}
