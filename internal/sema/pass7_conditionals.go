package sema

import (
	"fmt"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// CheckConditionalStmts is pass 7 (§4.3.7): every IF/IF_ELSE/LOOP
// guard must be boolean. Grounded on check_conditional_stmts in
// semantic.c, including its exact (and slightly unusual) gating: a
// guard is only flagged when it both computed a non-bool result type
// AND carries a bound symbol whose own datatype is non-bool — a guard
// with no bound symbol (e.g. a bare AND/OR/relational node) is never
// flagged here, regardless of its computed result type.
func CheckConditionalStmts(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.If, ast.IfElse, ast.Loop:
		cond := node.Son(0)
		if cond == nil {
			break
		}
		resultNotBool := cond.ResultType != symbols.Bool
		symbolNotBool := cond.Symbol != nil && cond.Symbol.Datatype != symbols.Bool
		if resultNotBool && symbolNotBool {
			ctx.report(diag.New(diag.ConditionNotBoolean, node.Line, fmt.Sprintf(
				"invalid conditional statement (expected bool, got %s)", cond.ResultType)))
		}
	}

	for _, son := range node.Sons {
		CheckConditionalStmts(ctx, son)
	}
}
