package csp

import (
	"fmt"
	"strings"
)

// Domain is an ordered, duplicate-free collection of candidate values for a
// variable. Values are plain ints; applications define their own encoding
// (digits as themselves, letters as rune code points, and so on).
//
// A domain only ever shrinks while the solver runs: propagation removes
// values it can prove inconsistent, and the search loop collapses it to a
// singleton on assignment. Every removal is reported to the caller as a
// removed-value set so the exact values can be restored on backtrack. The
// restored content is equal to the original; the order may differ.
//
// The read API (Size, Empty, Has, Values) is exported for constraint
// implementations. Mutation is reserved to the propagator and the search
// loop in this package.
type Domain struct {
	values []int
}

// NewDomain builds a domain from the given values, preserving first-seen
// order and dropping duplicates.
func NewDomain(values ...int) *Domain {
	d := &Domain{values: make([]int, 0, len(values))}
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		d.values = append(d.values, v)
	}
	return d
}

// NewRangeDomain builds a domain containing lo..hi inclusive.
func NewRangeDomain(lo, hi int) *Domain {
	if hi < lo {
		return &Domain{}
	}
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return &Domain{values: values}
}

// Size returns the number of candidate values.
func (d *Domain) Size() int { return len(d.values) }

// Empty reports whether no candidate values remain.
func (d *Domain) Empty() bool { return len(d.values) == 0 }

// Has reports whether value is a current candidate.
func (d *Domain) Has(value int) bool {
	for _, v := range d.values {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns a copy of the current candidates in domain order.
func (d *Domain) Values() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)
	return out
}

// removeIf removes every value for which drop returns true and returns the
// removed values in domain order. The surviving values keep their order.
func (d *Domain) removeIf(drop func(value int) bool) []int {
	var removed []int
	kept := d.values[:0]
	for _, v := range d.values {
		if drop(v) {
			removed = append(removed, v)
		} else {
			kept = append(kept, v)
		}
	}
	d.values = kept
	return removed
}

// collapseTo reduces the domain to the singleton {value} and returns the
// values that were removed. The caller must have checked membership first.
func (d *Domain) collapseTo(value int) []int {
	removed := make([]int, 0, len(d.values)-1)
	for _, v := range d.values {
		if v != value {
			removed = append(removed, v)
		}
	}
	d.values = d.values[:0]
	d.values = append(d.values, value)
	return removed
}

// restore puts previously removed values back into the domain. The values
// must have come from removeIf/collapseTo on this domain with no
// intervening restore, so re-adding them cannot introduce duplicates.
func (d *Domain) restore(values []int) {
	d.values = append(d.values, values...)
}

// String renders the domain as {v1,v2,...} for debugging.
func (d *Domain) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range d.values {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("}")
	return b.String()
}
