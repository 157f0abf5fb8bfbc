package csp

import "testing"

func TestDomainBasics(t *testing.T) {
	d := NewRangeDomain(1, 9)
	if d.Size() != 9 {
		t.Fatalf("expected 9 values, got %d", d.Size())
	}
	if !d.Has(5) {
		t.Fatalf("expected domain to have 5")
	}
	if d.Has(10) {
		t.Fatalf("expected domain not to have 10")
	}
}

func TestDomainDedupes(t *testing.T) {
	d := NewDomain(3, 1, 3, 2, 1)
	if d.Size() != 3 {
		t.Fatalf("expected 3 values after dedupe, got %d", d.Size())
	}
	got := d.Values()
	want := []int{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected first-seen order %v, got %v", want, got)
		}
	}
}

func TestDomainRemoveIfAndRestore(t *testing.T) {
	d := NewRangeDomain(1, 5)
	removed := d.removeIf(func(v int) bool { return v%2 == 0 })
	if len(removed) != 2 || removed[0] != 2 || removed[1] != 4 {
		t.Fatalf("expected [2 4] removed, got %v", removed)
	}
	if d.Size() != 3 || d.Has(2) || d.Has(4) {
		t.Fatalf("domain not pruned: %s", d)
	}

	d.restore(removed)
	if d.Size() != 5 {
		t.Fatalf("expected restore to size 5, got %d", d.Size())
	}
	for v := 1; v <= 5; v++ {
		if !d.Has(v) {
			t.Fatalf("expected %d back after restore", v)
		}
	}
}

func TestDomainCollapse(t *testing.T) {
	d := NewRangeDomain(1, 4)
	removed := d.collapseTo(3)
	if d.Size() != 1 || !d.Has(3) {
		t.Fatalf("expected singleton {3}, got %s", d)
	}
	if len(removed) != 3 {
		t.Fatalf("expected 3 removed values, got %v", removed)
	}
	d.restore(removed)
	if d.Size() != 4 {
		t.Fatalf("expected full domain back, got %s", d)
	}
}

func TestEmptyRangeDomain(t *testing.T) {
	d := NewRangeDomain(5, 1)
	if !d.Empty() {
		t.Fatalf("expected empty domain, got %s", d)
	}
}
