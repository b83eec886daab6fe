package sema

import (
	"fmt"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// CheckAssignments is pass 4 (§4.3.4): validate VAR_ATTRIB (scalar
// assignment) and VEC_ATTRIB (indexed assignment) nodes against the
// declared datatype/role of their target. Grounded on
// check_assignments in semantic.c.
func CheckAssignments(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.VarAttrib:
		checkVarAttrib(ctx, node)
	case ast.VecAttrib:
		checkVecAttrib(ctx, node)
	}

	for _, son := range node.Sons {
		CheckAssignments(ctx, son)
	}
}

func checkVarAttrib(ctx *Context, node *ast.Node) {
	if node.Symbol != nil && node.Symbol.IsFunction {
		ctx.report(diag.New(diag.AssignToFunction, node.Line, fmt.Sprintf(
			"invalid assignment to function %s", node.Symbol.Text)))
	}

	expected := symbols.Unset
	if node.Symbol != nil {
		expected = node.Symbol.Datatype
	}
	rhs := node.Son(0)
	resulting := ExpressionTypecheck(ctx, rhs)

	if rhs.Kind == ast.Identifier {
		switch {
		case node.Symbol != nil && node.Symbol.IsVector && rhs.Symbol != nil && !rhs.Symbol.IsVector:
			ctx.report(diag.New(diag.AssignScalarToVector, node.Line, "invalid assignment of scalar/function to vector"))
		case rhs.Symbol != nil && rhs.Symbol.IsVector && node.Symbol != nil && !node.Symbol.IsVector && !node.Symbol.IsFunction:
			ctx.report(diag.New(diag.AssignVectorToScalar, node.Line, "invalid assignment of vector to scalar"))
		case rhs.Symbol != nil && rhs.Symbol.IsFunction && node.Symbol != nil && !node.Symbol.IsVector && !node.Symbol.IsFunction:
			ctx.report(diag.New(diag.AssignFuncToScalar, node.Line, fmt.Sprintf(
				"invalid assignment of function %s to scalar %s", node.Symbol.Text, rhs.Symbol.Text)))
		case rhs.Symbol != nil && rhs.Symbol.IsFunction && node.Symbol != nil && node.Symbol.IsVector:
			ctx.report(diag.New(diag.AssignFuncToVector, node.Line, fmt.Sprintf(
				"invalid assignment of function %s to vector %s", node.Symbol.Text, rhs.Symbol.Text)))
		}
	} else if node.Symbol != nil && node.Symbol.IsVector {
		ctx.report(diag.New(diag.AssignExprToVector, node.Line, fmt.Sprintf(
			"invalid assignment of expression to vector %s", node.Symbol.Text)))
	}

	switch {
	case expected != resulting && resulting != symbols.Unset && !compareDatatypes(expected, resulting):
		ctx.report(diag.New(diag.AssignTypeMismatch, node.Line, fmt.Sprintf(
			"invalid assignment of %s to %s", resulting, expected)))
	case resulting == symbols.Unset:
		if node.Symbol != nil && rhs.Symbol != nil && !compareDatatypes(node.Symbol.Datatype, rhs.Symbol.Datatype) {
			ctx.report(diag.New(diag.AssignTypeMismatch, node.Line, fmt.Sprintf(
				"invalid assignment of %s to %s", rhs.Symbol.Datatype, node.Symbol.Datatype)))
		}
	}
}

func checkVecAttrib(ctx *Context, node *ast.Node) {
	indexer := node.Son(0)
	if indexer.Kind != ast.LitInt && indexer.Kind != ast.LitChar {
		if indexer.Kind == ast.FuncCall {
			funcDatatype := symbols.Unset
			if indexer.Symbol != nil {
				funcDatatype = indexer.Symbol.Datatype
			}
			if funcDatatype != symbols.Int && funcDatatype != symbols.Char {
				ctx.report(diag.New(diag.VectorIndexerType, node.Line, fmt.Sprintf(
					"invalid vector indexer type (expected int or char, got %s -> %s)", indexer.Kind, funcDatatype)))
			}
		} else {
			resultingType := ExpressionTypecheck(ctx, indexer)
			indexer.ResultType = resultingType
			if resultingType != symbols.Int && resultingType != symbols.Char {
				ctx.report(diag.New(diag.VectorIndexerType, node.Line, fmt.Sprintf(
					"invalid vector indexer type (expected int or char, got %s)", resultingType)))
			}
		}
	}

	expected := symbols.Unset
	if node.Symbol != nil {
		expected = node.Symbol.Datatype
	}
	rhs := node.Son(1)
	resulting := symbols.Unset
	if rhs != nil {
		resulting = rhs.ResultType
	}

	if rhs != nil && rhs.Kind == ast.Identifier {
		if rhs.Symbol != nil && rhs.Symbol.IsVector && rhs.Kind != ast.VecAccess {
			ctx.report(diag.New(diag.AssignVectorToIndex, node.Line, "invalid assignment of vector to vector index"))
		}
		if rhs.Symbol != nil && rhs.Symbol.IsFunction && rhs.Kind != ast.FuncCall {
			ctx.report(diag.New(diag.AssignFuncToIndex, node.Line, "invalid assignment of function to vector index"))
		}
	}

	if expected != resulting && resulting != symbols.Unset {
		ctx.report(diag.New(diag.AssignIndexTypeMismatch, node.Line, fmt.Sprintf(
			"invalid assignment of %s to %s[]", resulting, expected)))
	}
}
