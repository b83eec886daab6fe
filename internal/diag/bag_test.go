package diag

import "testing"

func TestBagCapDrops(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(Undeclared, 1, "x")) || !b.Add(New(Undeclared, 2, "y")) {
		t.Fatalf("first two adds within capacity must succeed")
	}
	if b.Add(New(Undeclared, 3, "z")) {
		t.Fatalf("add past capacity must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 diagnostics held, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	b.Add(Warning(Unknown, 1, "just a warning"))
	if b.HasErrors() {
		t.Fatalf("a warning-only bag must not report HasErrors")
	}
	b.Add(New(Undeclared, 2, "boom"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after adding an error diagnostic")
	}
}

func TestFormatOmitsLineWhenZero(t *testing.T) {
	d := New(Undeclared, 0, "undeclared identifier foo")
	got := Format(d)
	want := "Semantic error: undeclared identifier foo"
	if got != want {
		t.Fatalf("Format(%v) = %q, want %q", d, got, want)
	}
}

func TestFormatIncludesLine(t *testing.T) {
	d := New(Redeclared, 12, "identifier x already declared")
	got := Format(d)
	want := "Semantic error: identifier x already declared at line 12"
	if got != want {
		t.Fatalf("Format(%v) = %q, want %q", d, got, want)
	}
}

func TestBagSortedPutsZeroLineLast(t *testing.T) {
	b := NewBag(0)
	b.Add(New(Undeclared, 0, "undeclared"))
	b.Add(New(Redeclared, 5, "redeclared"))
	sorted := b.Sorted()
	if sorted[0].Line != 5 || sorted[1].Line != 0 {
		t.Fatalf("expected line-anchored diagnostics before zero-line ones, got %+v", sorted)
	}
}
