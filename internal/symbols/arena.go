package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// arena is a 1-based typed arena for *Symbol, mirroring the
// teacher's generic Arena[T] but specialized: Table needs to hand out
// stable symbols.ID values that double as slice indices for
// serialization (internal/unit), so a non-generic arena keeps the
// symbols package self-contained.
type arena struct {
	items []*Symbol
}

func newArena(capHint uint) *arena {
	return &arena{items: make([]*Symbol, 0, capHint)}
}

// allocate appends sym and assigns it the next ID.
func (a *arena) allocate(sym *Symbol) ID {
	n, err := safecast.Conv[uint32](len(a.items) + 1)
	if err != nil {
		panic(fmt.Errorf("symbols: arena overflow: %w", err))
	}
	sym.ID = ID(n)
	a.items = append(a.items, sym)
	return sym.ID
}

// get returns the symbol for id, or nil if id is invalid.
func (a *arena) get(id ID) *Symbol {
	if id == NoID || int(id) > len(a.items) {
		return nil
	}
	return a.items[id-1]
}

// len returns the number of allocated symbols.
func (a *arena) len() int { return len(a.items) }

// all returns a read-only view over every allocated symbol in
// allocation order.
func (a *arena) all() []*Symbol { return a.items }
