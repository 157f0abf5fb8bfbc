package csp

// Stats holds counters describing the work done by the most recent Solve.
// They are plain values with no synchronization; read them after Solve
// returns.
type Stats struct {
	// Nodes is the number of search nodes entered (recursive calls into
	// the backtracking search, including the root).
	Nodes int

	// Backjumps counts skip-level backtracks taken under the conflict
	// rule.
	Backjumps int

	// Propagations counts AC-3 runs, the initial whole-problem pass
	// included.
	Propagations int

	// ValuesPruned counts domain values removed by propagation across the
	// whole solve, restored values included.
	ValuesPruned int
}
