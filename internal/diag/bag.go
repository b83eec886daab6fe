package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a capacity, mirroring the teacher's
// capped Bag (internal/diag/bag.go): once full, Add silently drops
// further diagnostics rather than growing unbounded on a pathological
// input, matching the CLI's --max-diagnostics flag (SPEC_FULL §4.10).
type Bag struct {
	items   []*Diagnostic
	maximum uint16
}

// NewBag builds a Bag capped at maximum entries. maximum <= 0 selects
// the largest cap a Bag supports, 65535 entries.
func NewBag(maximum int) *Bag {
	if maximum <= 0 {
		return &Bag{maximum: ^uint16(0)}
	}
	cap16, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag maximum overflow: %w", err))
	}
	return &Bag{items: make([]*Diagnostic, 0, cap16), maximum: cap16}
}

// Add appends d, returning false if the bag is already at capacity.
func (b *Bag) Add(d *Diagnostic) bool {
	if d == nil || len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of diagnostics currently held.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic is at SevError or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the held diagnostics in insertion
// order. Callers must not mutate the returned slice.
func (b *Bag) Items() []*Diagnostic { return b.items }

// Sorted returns the diagnostics ordered by line (zero-line entries —
// undeclared identifiers — sort last, matching the original compiler's
// behavior of reporting the table-wide undeclared sweep after every
// line-anchored pass).
func (b *Bag) Sorted() []*Diagnostic {
	out := make([]*Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Line, out[j].Line
		if li == 0 {
			li = int(^uint(0) >> 1)
		}
		if lj == 0 {
			lj = int(^uint(0) >> 1)
		}
		return li < lj
	})
	return out
}
