package sema

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// The predicates below give expression_typecheck and the operand
// checks a closed vocabulary to classify a node by its Kind (§4.2).
// The original compiler's equivalents (is_bool/is_logic/is_arithmetic/
// is_numeric/is_unary/is_binary/is_input_cmd) lived in a header this
// retrieval didn't capture; these are reconstructed from every call
// site in semantic.c rather than copied from source, so each is
// commented with the call-site shape it has to satisfy.

// isArithmetic reports whether node's own operator produces a
// numeric result from two numeric operands (+, -, *, /).
func isArithmetic(node *ast.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.Add, ast.Sub, ast.Mul, ast.Div:
		return true
	}
	return false
}

// isRelational reports whether node compares two operands (<=, >=,
// ==, !=, >, <).
func isRelational(node *ast.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.Le, ast.Ge, ast.Eq, ast.Dif, ast.Gt, ast.Lt:
		return true
	}
	return false
}

// isLogic reports whether node is a boolean connective (&&, ||, !).
func isLogic(node *ast.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.And, ast.Or, ast.Not:
		return true
	}
	return false
}

// isBinary reports whether node takes exactly two operands.
func isBinary(node *ast.Node) bool {
	return isArithmetic(node) || isRelational(node) || node.Kind == ast.And || node.Kind == ast.Or
}

// isUnary reports whether node takes exactly one operand (negation or
// logical not).
func isUnary(node *ast.Node) bool {
	if node == nil {
		return false
	}
	return node.Kind == ast.Neg || node.Kind == ast.Not
}

// isInputCmd reports whether node is one of the four input(TYPE)
// expression forms (§6.1).
func isInputCmd(node *ast.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.InputExprInt, ast.InputExprReal, ast.InputExprChar, ast.InputExprBool:
		return true
	}
	return false
}

// inputCmdType returns the datatype an input(TYPE) expression
// produces.
func inputCmdType(node *ast.Node) symbols.Datatype {
	switch node.Kind {
	case ast.InputExprInt:
		return symbols.Int
	case ast.InputExprReal:
		return symbols.Real
	case ast.InputExprChar:
		return symbols.Char
	case ast.InputExprBool:
		return symbols.Bool
	default:
		return symbols.Unset
	}
}

// isNumeric reports whether node is itself a numeric-or-char-typed
// value-bearing leaf: a literal, an identifier, a vector access, or a
// function call with a non-bool datatype. Compound operator nodes
// (arithmetic/relational/logic) are classified by isArithmetic/
// isLogic instead, so a bare plus/and node never also counts as
// "numeric" here.
func isNumeric(node *ast.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.LitInt, ast.LitReal, ast.LitChar, ast.Identifier, ast.VecAccess, ast.FuncCall:
		if node.Symbol == nil {
			return true
		}
		return node.Symbol.Datatype != symbols.Bool
	}
	return false
}

// isBool reports whether node is a boolean-valued expression: a
// relational/logical operator node (produces bool by construction),
// or a value-bearing node whose bound symbol has datatype Bool.
func isBool(node *ast.Node) bool {
	if node == nil {
		return false
	}
	if isRelational(node) || isLogic(node) {
		return true
	}
	return node.Symbol != nil && node.Symbol.Datatype == symbols.Bool
}
