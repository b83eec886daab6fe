package sema

import (
	"fmt"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// CheckOperands is pass 3 (§4.3.3): classify every expression node,
// flag misuse of function/vector symbols as plain values, validate
// operand shapes for each operator family, and fill in ResultType via
// ExpressionTypecheck. Grounded directly on check_operands in
// semantic.c; the per-operator-family helpers below follow its
// switch cases one for one, including two faithfully preserved quirks
// noted inline.
func CheckOperands(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	if isInputCmd(node) {
		node.ResultType = inputCmdType(node)
	}

	switch node.Kind {
	case ast.LitInt, ast.LitChar, ast.LitReal:
		node.ResultType = literalKindDatatype(node.Kind)
	}

	if node.Kind == ast.LitChar && node.Symbol != nil && !ast.IsSingleGrapheme(node.Symbol.Text) {
		ctx.report(diag.New(diag.CharLiteralNotSingleGrapheme, node.Line, fmt.Sprintf(
			"char literal %q is not exactly one grapheme", node.Symbol.Text)))
	}

	if node.Kind == ast.Identifier {
		if node.Symbol != nil {
			if node.Symbol.IsFunction {
				ctx.report(diag.New(diag.FuncUsedAsValue, node.Line, fmt.Sprintf(
					"function %s used as value (should be called instead)", node.Symbol.Text)))
			}
			if node.Symbol.IsVector && node.Son(0) == nil {
				ctx.report(diag.New(diag.VecUsedAsValue, node.Line, fmt.Sprintf(
					"vector %s used as value (should be indexed instead)", node.Symbol.Text)))
			}
		}
		node.ResultType = ExpressionTypecheck(ctx, node)
	}

	switch node.Kind {
	case ast.FuncCall:
		if node.Symbol != nil && !node.Symbol.IsFunction {
			ctx.report(diag.New(diag.CallOnNonFunction, node.Line, fmt.Sprintf(
				"tried to call %s which is not a function", node.Symbol.Text)))
		}
	case ast.VecAccess:
		checkVecAccessOperand(ctx, node)
	case ast.NestedExpr:
		node.ResultType = ExpressionTypecheck(ctx, node)
	case ast.Mul, ast.Div, ast.Add, ast.Sub, ast.Le, ast.Ge, ast.Eq, ast.Dif, ast.Gt, ast.Lt:
		checkArithRelationalOperands(ctx, node)
	case ast.Neg:
		checkNegOperand(ctx, node)
	case ast.And, ast.Or:
		checkAndOrOperands(ctx, node)
	case ast.Not:
		checkNotOperand(ctx, node)
	}

	for _, son := range node.Sons {
		CheckOperands(ctx, son)
	}
}

func checkVecAccessOperand(ctx *Context, node *ast.Node) {
	if node.Symbol != nil && !node.Symbol.IsVector {
		ctx.report(diag.New(diag.IndexOnNonVector, node.Line, fmt.Sprintf(
			"tried to index %s which is not a vector", node.Symbol.Text)))
	}

	idx := node.Son(0)
	if idx != nil && idx.Kind == ast.Identifier && idx.Symbol != nil {
		if idx.Symbol.IsFunction {
			ctx.report(diag.New(diag.OperandNeedsCall, node.Line, fmt.Sprintf(
				"cannot use function %s as vector index", idx.Symbol.Text)))
		}
		if idx.Symbol.IsVector {
			ctx.report(diag.New(diag.OperandNeedsIndex, node.Line, fmt.Sprintf(
				"cannot use vector %s as vector index", idx.Symbol.Text)))
		}
	}

	if idx != nil {
		if idx.Symbol != nil && idx.Symbol.Datatype == symbols.Unset {
			idx.Symbol.Datatype = ExpressionTypecheck(ctx, idx)
		} else if idx.ResultType == symbols.Unset {
			idx.ResultType = ExpressionTypecheck(ctx, idx)
		}
	}

	symbolNotInt := idx != nil && idx.Symbol != nil && idx.Symbol.Datatype != symbols.Int
	resultNotInt := idx == nil || idx.ResultType != symbols.Int
	if symbolNotInt || resultNotInt {
		name := ""
		if node.Symbol != nil {
			name = node.Symbol.Text
		}
		ctx.report(diag.New(diag.NonIntegerIndex, node.Line, fmt.Sprintf(
			"tried to index %s with non-integer expression", name)))
	}
}

func checkArithRelationalOperands(ctx *Context, node *ast.Node) {
	lhs, rhs := node.Son(0), node.Son(1)

	if lhs.Symbol != nil && lhs.Symbol.IsVector && lhs.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid left operand (vector should be indexed)"))
	}
	if rhs.Symbol != nil && rhs.Symbol.IsVector && rhs.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid right operand (vector should be indexed)"))
	}
	if lhs.Symbol != nil && lhs.Symbol.IsFunction && lhs.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid left operand (function should be called)"))
	}
	if rhs.Symbol != nil && rhs.Symbol.IsFunction && rhs.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid right operand (function should be called)"))
	}

	validLeftShape := isBool(lhs) || lhs.Kind == ast.NestedExpr || lhs.Kind == ast.Neg || isNumeric(lhs) || isArithmetic(lhs) || isInputCmd(lhs)
	validRightShape := isBool(rhs) || rhs.Kind == ast.NestedExpr || rhs.Kind == ast.Neg || isNumeric(rhs) || isArithmetic(rhs) || isInputCmd(rhs)
	if !validLeftShape {
		ctx.report(diag.New(diag.OperandTypeMismatch, node.Line, "invalid left operand"))
	}
	if !validRightShape {
		ctx.report(diag.New(diag.OperandTypeMismatch, node.Line, "invalid right operand"))
	}

	if validLeftShape && validRightShape {
		leftDatatype, rightDatatype := symbols.Unset, symbols.Unset
		if lhs.Symbol != nil {
			leftDatatype = lhs.Symbol.Datatype
		}
		if rhs.Symbol != nil {
			rightDatatype = rhs.Symbol.Datatype
		}
		if lhs.Kind == ast.NestedExpr || isInputCmd(lhs) || lhs.Kind == ast.Neg || isArithmetic(lhs) {
			leftDatatype = ExpressionTypecheck(ctx, lhs)
		}
		if rhs.Kind == ast.NestedExpr || isInputCmd(rhs) || rhs.Kind == ast.Neg || isArithmetic(rhs) {
			rightDatatype = ExpressionTypecheck(ctx, rhs)
		}

		if leftDatatype != rightDatatype && !compareDatatypes(leftDatatype, rightDatatype) {
			ctx.report(diag.New(diag.OperandsNotSameType, node.Line, "operands should have same type"))
		}

		if isArithmetic(node) && !isArithmetic(lhs) && !isArithmetic(rhs) && !isNumeric(lhs) && !isNumeric(rhs) {
			ctx.report(diag.New(diag.OperandsNotNumeric, node.Line, "operands should be arithmetic"))
		}
	}

	// The "invalid resulting expression type" diagnostic that the
	// original guards behind `!errored` for this node group is
	// unreachable: its own operand-shape check always marks the node
	// errored before reaching that guard, so the result here is
	// always just the computed type — preserved as observed rather
	// than "fixed", since no REDESIGN FLAG calls for changing it.
	node.ResultType = ExpressionTypecheck(ctx, node)
}

func checkNegOperand(ctx *Context, node *ast.Node) {
	operand := node.Son(0)
	if operand.Symbol != nil && operand.Symbol.IsVector && operand.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid unary operand (vector should be indexed)"))
	}
	if operand.Symbol != nil && operand.Symbol.IsFunction && operand.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid unary operand (function should be called)"))
	}
	if operand.Kind != ast.NestedExpr && !isNumeric(operand) && !isArithmetic(operand) && !isInputCmd(operand) {
		ctx.report(diag.New(diag.InvalidUnaryOperand, node.Line, "invalid unary arithmetic/numeric operand"))
	}

	result := ExpressionTypecheck(ctx, node)
	if !truthy(result) {
		ctx.report(diag.New(diag.InvalidResultType, node.Line, fmt.Sprintf(
			"invalid resulting expression type for %s", node.Kind)))
		return
	}
	node.ResultType = result
	if result == symbols.Bool {
		ctx.report(diag.New(diag.InvalidResultType, node.Line, fmt.Sprintf(
			"invalid resulting expression type for %s (got bool, expected numeric-compatible type)", node.Kind)))
	}
}

func checkAndOrOperands(ctx *Context, node *ast.Node) {
	lhs, rhs := node.Son(0), node.Son(1)

	if lhs.Symbol != nil && lhs.Symbol.IsVector && lhs.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid left operand (vector should be indexed)"))
	}
	if rhs.Symbol != nil && rhs.Symbol.IsVector && rhs.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid right operand (vector should be indexed)"))
	}
	if lhs.Symbol != nil && lhs.Symbol.IsFunction && lhs.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid left operand (function should be called)"))
	}
	if rhs.Symbol != nil && rhs.Symbol.IsFunction && rhs.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid right operand (function should be called)"))
	}

	if !isBool(lhs) && lhs.Kind != ast.NestedExpr && !isLogic(lhs) && !isInputCmd(lhs) {
		ctx.report(diag.New(diag.InvalidLogicOperand, node.Line, fmt.Sprintf("invalid left operand for %s", node.Kind)))
	}
	if !isBool(rhs) && rhs.Kind != ast.NestedExpr && !isLogic(rhs) && !isInputCmd(rhs) {
		ctx.report(diag.New(diag.InvalidLogicOperand, node.Line, fmt.Sprintf("invalid right operand for %s", node.Kind)))
	}

	// Unlike the arithmetic/relational family, the original never
	// marks this node "errored" above, so the same-type check below
	// always runs regardless of the operand-shape diagnostics just
	// emitted.
	leftDatatype, rightDatatype := symbols.Unset, symbols.Unset
	if lhs.Symbol != nil {
		leftDatatype = lhs.Symbol.Datatype
	}
	if rhs.Symbol != nil {
		rightDatatype = rhs.Symbol.Datatype
	}
	if lhs.Kind == ast.NestedExpr || isInputCmd(lhs) {
		leftDatatype = ExpressionTypecheck(ctx, lhs)
	}
	if rhs.Kind == ast.NestedExpr || isInputCmd(rhs) {
		rightDatatype = ExpressionTypecheck(ctx, rhs)
	}
	if (lhs.Symbol != nil || isInputCmd(lhs)) && (rhs.Symbol != nil || isInputCmd(rhs)) && leftDatatype != rightDatatype {
		ctx.report(diag.New(diag.OperandsNotSameType, node.Line, "operands should have same type"))
	}

	result := ExpressionTypecheck(ctx, node)
	if !truthy(result) {
		ctx.report(diag.New(diag.InvalidResultType, node.Line, fmt.Sprintf(
			"invalid resulting expression type for %s", node.Kind)))
		return
	}
	node.ResultType = result
}

func checkNotOperand(ctx *Context, node *ast.Node) {
	operand := node.Son(0)
	if operand.Symbol != nil && operand.Symbol.IsVector && operand.Kind != ast.VecAccess {
		ctx.report(diag.New(diag.VectorIndexOperand, node.Line, "invalid unary logical operand (vector should be indexed)"))
	}
	if operand.Symbol != nil && operand.Symbol.IsFunction && operand.Kind != ast.FuncCall {
		ctx.report(diag.New(diag.OperandNeedsCall, node.Line, "invalid unary logical operand (function should be called)"))
	}
	if operand.Kind != ast.NestedExpr && !isLogic(operand) && !isBool(operand) && !isInputCmd(operand) {
		datatype := symbols.Unset
		if operand.Symbol != nil {
			datatype = operand.Symbol.Datatype
		} else {
			datatype = inputCmdType(operand)
		}
		ctx.report(diag.New(diag.InvalidLogicOperand, node.Line, fmt.Sprintf(
			"invalid unary logical operand (%s)", datatype)))
	}

	result := ExpressionTypecheck(ctx, node)
	if !truthy(result) {
		ctx.report(diag.New(diag.InvalidResultType, node.Line, fmt.Sprintf(
			"invalid resulting expression type for %s", node.Kind)))
		return
	}
	node.ResultType = result
}
