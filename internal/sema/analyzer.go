package sema

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/trace"
)

// Analyzer runs the seven semantic passes over a checked program tree
// in the fixed order §4.3 specifies: each pass depends on state the
// previous one wrote into the symbol table or the tree.
type Analyzer struct {
	ctx *Context
}

// NewAnalyzer builds an Analyzer around ctx.
func NewAnalyzer(ctx *Context) *Analyzer {
	return &Analyzer{ctx: ctx}
}

// Analyze runs every pass over root and returns the number of
// diagnostics at error severity accumulated in ctx.Bag. Callers
// inspect ctx.Bag directly for the full diagnostic list.
func (a *Analyzer) Analyze(root *ast.Node) int {
	passes := []struct {
		name string
		run  func()
	}{
		{"declarations", func() { CheckDeclarations(a.ctx, root) }},
		{"undeclared", func() { CheckUndeclared(a.ctx) }},
		{"operands", func() { CheckOperands(a.ctx, root) }},
		{"assignments", func() { CheckAssignments(a.ctx, root) }},
		{"return", func() { CheckReturn(a.ctx, root) }},
		{"call", func() { CheckFunctionCall(a.ctx, root) }},
		{"conditionals", func() { CheckConditionalStmts(a.ctx, root) }},
	}

	for _, p := range passes {
		_ = trace.Span(a.ctx.Tracer, trace.ScopePass, p.name, func() error {
			p.run()
			return nil
		})
	}

	errors := 0
	for _, d := range a.ctx.Bag.Items() {
		if d.Severity >= diag.SevError {
			errors++
		}
	}
	return errors
}
