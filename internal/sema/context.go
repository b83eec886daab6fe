// Package sema implements the seven-pass semantic analyzer (§4.3):
// declaration promotion, undeclared-identifier detection, expression
// typechecking, assignment validation, return-statement validation,
// call-site validation, and conditional/loop guard validation.
package sema

import (
	"corec/internal/diag"
	"corec/internal/symbols"
	"corec/internal/trace"
)

// Context reifies what the original compiler kept as process-global
// state (SemanticErrors counter, the symbol table, the next function
// id) into an explicit value threaded through every pass — so a CLI
// batch run (SPEC_FULL §5) can analyze several compilation units
// concurrently, each with its own Context, without any shared mutable
// global.
type Context struct {
	Table   *symbols.Table
	Bag     *diag.Bag
	Tracer  trace.Tracer
	nextFID int

	typecheckCache map[uint32]cacheEntry
}

type cacheEntry struct {
	result    symbols.Datatype
	valid     bool
}

// NewContext builds a Context around an existing symbol table and
// diagnostic bag. A nil tracer is replaced with a no-op one.
func NewContext(table *symbols.Table, bag *diag.Bag, tracer trace.Tracer) *Context {
	if tracer == nil {
		tracer = trace.New(trace.Config{})
	}
	return &Context{
		Table:          table,
		Bag:            bag,
		Tracer:         tracer,
		typecheckCache: make(map[uint32]cacheEntry),
	}
}

// nextFunctionID hands out the sequential function-id original's
// set_function_id bookkeeping assigned each function symbol, in
// first-declared order.
func (c *Context) nextFunctionID() int {
	c.nextFID++
	return c.nextFID
}

// report appends a diagnostic to the bag; a full bag silently drops
// it, matching --max-diagnostics (SPEC_FULL §4.10).
func (c *Context) report(d *diag.Diagnostic) {
	c.Bag.Add(d)
}
