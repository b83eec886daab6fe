package sema

import (
	"fmt"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// CheckFunctionCall is pass 6 (§4.3.6): validate every FUNC_CALL
// site's argument count and per-argument type against the callee's
// recorded signature. Grounded on check_function_call in semantic.c.
// A call whose symbol never got promoted past Identifier targets an
// undeclared name — pass 2 already reported that, so this pass is a
// no-op for it, matching the original's early return.
func CheckFunctionCall(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	if node.Kind == ast.FuncCall {
		checkCallSite(ctx, node)
	}

	for _, son := range node.Sons {
		CheckFunctionCall(ctx, son)
	}
}

func checkCallSite(ctx *Context, node *ast.Node) {
	if node.Symbol == nil || node.Symbol.Kind == symbols.Identifier {
		return
	}

	paramCount := 0
	index := 0
	for cell := node.Son(0); cell != nil; cell = cell.Son(1) {
		expr := cell.Son(0)
		if expr == nil {
			continue
		}
		expected := symbols.Unset
		if index < len(node.Symbol.Params) {
			expected = node.Symbol.Params[index]
		}
		actual := argDatatype(expr)
		if expected != symbols.Unset && !compareDatatypes(expected, actual) {
			ctx.report(diag.New(diag.CallArgTypeMismatch, node.Line, fmt.Sprintf(
				"invalid parameter type (expected %s, got %s)", expected, actual)))
		}
		index++
		paramCount++
	}

	if paramCount != node.Symbol.ParamCount {
		if paramCount == 0 {
			ctx.report(diag.New(diag.CallArityMismatch, node.Line, fmt.Sprintf(
				"invalid number of parameters (expected %d, got none)", node.Symbol.ParamCount)))
		} else {
			ctx.report(diag.New(diag.CallArityMismatch, node.Line, fmt.Sprintf(
				"invalid number of parameters (expected %d, got %d)", node.Symbol.ParamCount, paramCount)))
		}
	}
}

// argDatatype resolves a call argument's effective datatype: its
// already-computed result type, else its bound symbol's datatype,
// else (for a bare input(TYPE) expression argument) the input type.
func argDatatype(expr *ast.Node) symbols.Datatype {
	if expr.ResultType != symbols.Unset {
		return expr.ResultType
	}
	if expr.Symbol != nil {
		return expr.Symbol.Datatype
	}
	return inputCmdType(expr)
}
