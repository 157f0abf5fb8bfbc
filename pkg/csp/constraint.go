package csp

// Constraint is the contract every constraint kind implements, whether it
// ships with the framework (AllDistinct) or is supplied by an application
// (column sums, dictionary lines). Implementations are stateless beyond
// their variable list and any precomputed lookup structures; they must not
// carry per-search mutable state and must never mutate a variable.
type Constraint interface {
	// Variables returns the variables this constraint covers, in the order
	// fixed at construction.
	Variables() []*Variable

	// IsSatisfiable reports whether assigning value to v could still be
	// extended to an assignment satisfying this constraint, given every
	// other covered variable's current domain and committed value. It is a
	// pure query: inconsistency is expressed by returning false, never by
	// panicking or by touching any variable's state.
	IsSatisfiable(v *Variable, value int) bool
}

// covers reports whether c's variable list includes v.
func covers(c Constraint, v *Variable) bool {
	for _, cv := range c.Variables() {
		if cv == v {
			return true
		}
	}
	return false
}
