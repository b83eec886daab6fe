package sema

import (
	"fmt"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// CheckReturn is pass 5 (§4.3.5): every function must contain at
// least one RETURN_CMD reachable from its body, and each one's
// expression must typecheck against the function's declared return
// datatype. Grounded on check_return/check_return_aux in semantic.c.
// Unlike the original, this pass does not re-populate the function's
// parameter signature — pass 1 (CheckDeclarations) already owns that
// exclusively, so redoing it here would just repeat identical work.
func CheckReturn(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.FuncDeclInt, ast.FuncDeclChar, ast.FuncDeclReal, ast.FuncDeclBool:
		if node.Symbol != nil && !checkReturnAux(ctx, node, node.Symbol.Datatype) {
			ctx.report(diag.New(diag.ReturnMissing, node.Line, fmt.Sprintf(
				"function %s is missing return statement", node.Symbol.Text)))
		}
	}

	for _, son := range node.Sons {
		CheckReturn(ctx, son)
	}
}

func checkReturnAux(ctx *Context, node *ast.Node, required symbols.Datatype) bool {
	if node == nil {
		return false
	}
	found := false

	if node.Kind == ast.ReturnCmd {
		expr := node.Son(0)
		returnDatatype := symbols.Unset
		if expr != nil {
			returnDatatype = expr.ResultType
		}

		if expr != nil && expr.Symbol != nil && expr.Symbol.IsVector && expr.Kind != ast.VecAccess {
			ctx.report(diag.New(diag.ReturnTypeMismatch, node.Line, fmt.Sprintf(
				"invalid return type (expected %s, got vector)", required)))
		}
		if expr != nil && expr.Symbol != nil && expr.Symbol.IsFunction && expr.Kind != ast.FuncCall {
			ctx.report(diag.New(diag.ReturnTypeMismatch, node.Line, fmt.Sprintf(
				"invalid return type (expected %s, got function)", required)))
		}

		if returnDatatype != required && !validateReturnType(required, expr) {
			if returnDatatype != symbols.Unset {
				ctx.report(diag.New(diag.ReturnTypeMismatch, node.Line, fmt.Sprintf(
					"invalid return type (expected %s, got %s)", required, returnDatatype)))
			} else {
				ctx.report(diag.New(diag.ReturnTypeMismatch, node.Line, fmt.Sprintf(
					"invalid return type (expected %s, got incompatible type)", required)))
			}
		}

		if expr != nil && expr.Kind == ast.NestedExpr {
			first := expr.Son(0)
			if first != nil && first.Kind == ast.Identifier && first.Symbol != nil &&
				(first.Symbol.IsVector || first.Symbol.IsFunction) {
				kindWord := "function"
				if first.Symbol.IsVector {
					kindWord = "vector"
				}
				ctx.report(diag.New(diag.ReturnTypeMismatch, node.Line, fmt.Sprintf(
					"invalid return type (expected %s, got %s %s)", required, returnDatatype, kindWord)))
			}
		}

		found = true
	}

	for _, son := range node.Sons {
		if checkReturnAux(ctx, son, required) {
			found = true
		}
	}
	return found
}
