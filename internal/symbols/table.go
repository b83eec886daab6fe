package symbols

import "fortio.org/safecast"

// defaultBuckets mirrors the original compiler's HASH_SIZE (997),
// rounded to a nearby prime; §3 calls for "~1000 buckets" and leaves
// the exact count unspecified, so Table.Hints lets callers (and the
// CLI's [table] config section) override it.
const defaultBuckets = 1009

// Hints provides an optional bucket-count override and a symbol
// capacity hint for the backing arena.
type Hints struct {
	Buckets uint
	Symbols uint
}

// Table is the process-wide (well: per-compilation-unit) flat,
// chained, string-keyed symbol table described in §4.1. It is the
// single interning store: every identifier occurrence in the AST
// points at exactly one *Symbol obtained from this table.
type Table struct {
	buckets [][]ID
	arena   *arena
}

// NewTable builds an empty table. A zero Hints uses the defaults.
func NewTable(h Hints) *Table {
	n := h.Buckets
	if n == 0 {
		n = defaultBuckets
	}
	return &Table{
		buckets: make([][]ID, n),
		arena:   newArena(h.Symbols),
	}
}

// hash computes a bucket index for text using the same linear,
// multiplicative-accumulator shape as the original hash.h (iterate
// bytes, fold into a running product mod bucket count), which keeps
// the "chained hash table" texture §4.1 describes without needing
// bit-for-bit reproduction of its specific constant.
func (t *Table) hash(text string) int {
	acc := 1
	n := len(t.buckets)
	for i := 0; i < len(text); i++ {
		acc = (acc*int(text[i]))%n + 1
	}
	return (acc - 1 + n) % n
}

// Find performs an O(1)-average lookup by text; ok is false if no
// symbol with that text has been interned yet.
func (t *Table) Find(text string) (*Symbol, bool) {
	pos := t.hash(text)
	for _, id := range t.buckets[pos] {
		sym := t.arena.get(id)
		if sym != nil && sym.Text == text {
			return sym, true
		}
	}
	return nil, false
}

// Insert returns the existing symbol for text if already present,
// otherwise interns a fresh one at kind Identifier and the given
// line. Insert never changes an existing symbol's kind — promotion
// is the analyzer's job (§4.3.1).
func (t *Table) Insert(text string, line int) *Symbol {
	if sym, ok := t.Find(text); ok {
		return sym
	}
	sym := newIdentifierSymbol(NoID, text, line)
	id := t.arena.allocate(sym)
	pos := t.hash(text)
	t.buckets[pos] = append(t.buckets[pos], id)
	return sym
}

// InsertSynthetic interns a compiler-generated symbol (TEMP or LABEL)
// directly at the given kind, bypassing the Identifier start state —
// synthetic names are fresh by construction and never collide with
// source identifiers, but routing them through the same table keeps
// a single source of truth for every symbol the TAC stream
// references.
func (t *Table) InsertSynthetic(text string, kind Kind, datatype Datatype) *Symbol {
	sym := &Symbol{Text: text, Kind: kind, Datatype: datatype}
	id := t.arena.allocate(sym)
	pos := t.hash(text)
	t.buckets[pos] = append(t.buckets[pos], id)
	return sym
}

// Len returns the number of interned symbols.
func (t *Table) Len() int { return t.arena.len() }

// All returns every interned symbol in insertion order.
func (t *Table) All() []*Symbol { return t.arena.all() }

// BucketCount returns the number of hash buckets backing the table,
// mostly useful for tests and diagnostics.
func (t *Table) BucketCount() int { return len(t.buckets) }

// CheckUndeclared scans every entry; any symbol still at kind
// Identifier after pass 1 was referenced but never declared. It
// returns their texts, in deterministic (bucket, chain) order, for
// the caller to turn into diagnostics — keeping the "Semantic error:
// undeclared identifier <text>" formatting in internal/sema, which
// owns diagnostic text, rather than here.
func (t *Table) CheckUndeclared() []string {
	var undeclared []string
	for _, bucket := range t.buckets {
		for _, id := range bucket {
			sym := t.arena.get(id)
			if sym != nil && sym.Kind == Identifier {
				undeclared = append(undeclared, sym.Text)
			}
		}
	}
	return undeclared
}

// NextParamIndex is a small overflow-checked helper used by the
// analyzer when recording a function's formal parameter types.
func NextParamIndex(count int) (int, error) {
	idx, err := safecast.Conv[int](count)
	if err != nil {
		return 0, err
	}
	if idx >= MaxParams {
		return 0, errTooManyParams
	}
	return idx, nil
}
