package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateIdempotent(t *testing.T) {
	p := australia(t, red, green, blue)
	p.assign(p.Variable("WA"), red)

	first, _ := p.propagate(nil)
	second, _ := p.propagate(nil)

	assert.NotEmpty(t, first, "assigning WA should prune its neighbors")
	assert.Empty(t, second, "a second pass with no intervening assignment must remove nothing")
}

func TestPropagateReportsExactRemovals(t *testing.T) {
	p := australia(t, red, green, blue)
	before := make(map[string][]int)
	for _, v := range p.Variables() {
		before[v.Name()] = v.Domain().Values()
	}

	p.assign(p.Variable("SA"), blue)
	removed, _ := p.propagate(p.Variable("SA"))

	// Restoring the reported removals must reproduce the original domain
	// content for every touched variable.
	for v, vals := range removed {
		v.Domain().restore(vals)
	}
	for _, v := range p.Variables() {
		if v.Name() == "SA" {
			continue
		}
		assert.ElementsMatch(t, before[v.Name()], v.Domain().Values(), "domain of %s", v.Name())
	}
}

func TestPropagateScopedMatchesTrigger(t *testing.T) {
	p := australia(t, red, green, blue)
	p.assign(p.Variable("WA"), red)
	removed, _ := p.propagate(p.Variable("WA"))

	for v := range removed {
		assert.Contains(t, []string{"NT", "SA", "Q", "NSW", "V"}, v.Name(),
			"pruning must stay within reach of the trigger's constraint graph")
	}
	assert.False(t, p.Variable("NT").Domain().Has(red))
	assert.False(t, p.Variable("SA").Domain().Has(red))
	assert.True(t, p.Variable("T").Domain().Has(red), "Tasmania shares no constraint with WA")
}

func TestDisjointLookupIsPurelyAnOptimization(t *testing.T) {
	run := func(disjoint bool) map[string][]int {
		p := australia(t, red, green, blue)
		p.SetDisjointConstraints(disjoint)
		p.assign(p.Variable("SA"), green)
		p.assign(p.Variable("Q"), red)
		p.propagate(nil)
		domains := make(map[string][]int)
		for _, v := range p.Variables() {
			domains[v.Name()] = v.Domain().Values()
		}
		return domains
	}

	fast := run(true)
	scan := run(false)
	require.Equal(t, len(scan), len(fast))
	for name, dom := range scan {
		assert.ElementsMatch(t, dom, fast[name], "domain of %s diverged between lookup strategies", name)
	}
}

func TestPropagateRecordsPruningProvenance(t *testing.T) {
	// A = {1} forces B to 2, and B's shrinkage in turn prunes 2 from C,
	// which shares no constraint with A. C's pruning must still be blamed
	// on A, transitively through B, and the blame must vanish on undo.
	p := NewProblem()
	a := p.NewVariable("A", NewDomain(1))
	b := p.NewVariable("B", NewDomain(1, 2))
	c := p.NewVariable("C", NewDomain(2, 3))
	require.NoError(t, p.AddConstraint(&notEqual{a: a, b: b}))
	require.NoError(t, p.AddConstraint(&notEqual{a: b, b: c}))

	removed := map[*Variable][]int{a: p.assign(a, 1)}
	pruned, blamed := p.propagate(a)
	for v, vals := range pruned {
		removed[v] = append(removed[v], vals...)
	}

	assert.False(t, c.Domain().Has(2), "B collapsing to 2 should prune 2 from C")
	assert.True(t, b.blame.has(a))
	assert.True(t, c.blame.has(a), "chained pruning must trace back to the assignment")
	assert.False(t, c.blame.has(b), "unassigned variables are conduits, not blame")

	for v, vals := range removed {
		v.dom.restore(vals)
	}
	for v, srcs := range blamed {
		for _, src := range srcs {
			delete(v.blame, src)
		}
	}
	assert.Empty(t, b.blame)
	assert.Empty(t, c.blame)
}

func TestPropagateLeavesEmptyDomainToSearch(t *testing.T) {
	p := NewProblem()
	a := p.NewVariable("A", NewDomain(1))
	b := p.NewVariable("B", NewDomain(1))
	require.NoError(t, p.AddConstraint(NewAllDistinct(a, b)))

	// propagate itself reports the removals and returns normally; the
	// empty domain is the search's problem.
	removed, _ := p.propagate(nil)
	assert.True(t, a.Domain().Empty() || b.Domain().Empty())
	total := 0
	for _, vals := range removed {
		total += len(vals)
	}
	assert.GreaterOrEqual(t, total, 1)
}
