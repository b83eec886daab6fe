package sema

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// isValueLeaf reports whether kind is one of the value-bearing leaf
// node kinds expression_typecheck resolves directly from a bound
// symbol, rather than recursing into sons.
func isValueLeaf(kind ast.Kind) bool {
	switch kind {
	case ast.Identifier, ast.VecAccess, ast.FuncCall, ast.LitInt, ast.LitReal, ast.LitChar:
		return true
	}
	return false
}

// truthy mirrors the original's overload of "datatype 0" as both
// Unset and "typecheck failed": any non-Unset datatype counts as a
// successful typecheck in a boolean context.
func truthy(d symbols.Datatype) bool {
	return d != symbols.Unset
}

// ExpressionTypecheck computes node's result datatype (§4.3.3),
// memoizing per node ID so a node reachable from more than one pass
// (operand checks, assignment checks, return checks, call checks all
// call this on overlapping subtrees) is only walked once. This fixes
// the original's "typechecked" flag, which was set but never
// consulted — every call re-walked the whole subtree regardless.
func ExpressionTypecheck(ctx *Context, node *ast.Node) symbols.Datatype {
	if node == nil {
		// The original returns a truthy sentinel (1) for a missing
		// node so optional sons never fail a typecheck on their own;
		// Int happens to be the lowest non-Unset datatype, the same
		// coincidence the original's constant layout relied on.
		return symbols.Int
	}
	if entry, ok := ctx.typecheckCache[node.ID]; ok && entry.valid {
		return entry.result
	}

	result := computeTypecheck(ctx, node)
	ctx.typecheckCache[node.ID] = cacheEntry{result: result, valid: true}
	node.Typechecked = true
	node.ResultType = result
	return result
}

func computeTypecheck(ctx *Context, node *ast.Node) symbols.Datatype {
	if node.Kind == ast.NestedExpr {
		return ExpressionTypecheck(ctx, node.Son(0))
	}

	if isValueLeaf(node.Kind) && node.Symbol != nil {
		if node.Symbol.Datatype == symbols.Char && node.Kind != ast.LitChar {
			return symbols.Int
		}
		switch node.Kind {
		case ast.LitInt:
			return symbols.Int
		case ast.LitReal:
			return symbols.Real
		case ast.LitChar:
			return symbols.Char
		}
		return node.Symbol.Datatype
	}

	if isLogic(node) {
		if isBinary(node) {
			lhs, rhs := node.Son(0), node.Son(1)
			t1 := ExpressionTypecheck(ctx, lhs)
			t2 := ExpressionTypecheck(ctx, rhs)
			lhsPassesViaNested := (lhs.Kind == ast.NestedExpr || isLogic(lhs)) && truthy(ExpressionTypecheck(ctx, rhs))
			rhsPassesViaNested := (rhs.Kind == ast.NestedExpr || isLogic(rhs)) && truthy(ExpressionTypecheck(ctx, lhs))
			if lhsPassesViaNested || rhsPassesViaNested || t1 == t2 {
				return symbols.Bool
			}
			return symbols.Unset
		}
		if isUnary(node) {
			son := node.Son(0)
			t := ExpressionTypecheck(ctx, son)
			if (isLogic(son) && truthy(t)) || truthy(t) {
				return symbols.Bool
			}
			return symbols.Unset
		}
	}

	if isBinary(node) {
		t1 := ExpressionTypecheck(ctx, node.Son(0))
		t2 := ExpressionTypecheck(ctx, node.Son(1))
		if t1 == t2 {
			return t1
		}
		return symbols.Unset
	}

	if isUnary(node) {
		t := ExpressionTypecheck(ctx, node.Son(0))
		if truthy(t) {
			return t
		}
		return symbols.Unset
	}

	if isInputCmd(node) {
		return inputCmdType(node)
	}

	return symbols.Unset
}
