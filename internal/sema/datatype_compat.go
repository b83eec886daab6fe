package sema

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// compareDatatypes wraps symbols.Compare for call sites in this
// package, keeping the CHAR<->INT promotion rule (§4.2) in exactly
// one place.
func compareDatatypes(a, b symbols.Datatype) bool {
	return symbols.Compare(a, b)
}

// literalKindDatatype maps a literal/vector-declaration AST kind to
// the datatype it carries, used by the vector-initializer check
// (§4.3.1) to compare "what kind of literal is this initializer item"
// against "what datatype does this vector hold".
func literalKindDatatype(kind ast.Kind) symbols.Datatype {
	switch kind {
	case ast.LitInt:
		return symbols.Int
	case ast.LitReal:
		return symbols.Real
	case ast.LitChar:
		return symbols.Char
	default:
		return symbols.Unset
	}
}

// verifyLiteralCompatibility reports whether a vector initializer
// item of itemKind is acceptable for a vector declared to hold
// requiredKind literals — an INT literal is accepted into a CHAR
// vector (the same CHAR<->INT promotion expression_typecheck applies
// everywhere else), matching verify_literal_compatibility's call site
// in check_and_set_declarations.
func verifyLiteralCompatibility(itemKind, requiredKind ast.Kind) bool {
	if itemKind == requiredKind {
		return true
	}
	return requiredKind == ast.LitChar && itemKind == ast.LitInt
}

// validateReturnType allows a returned expression whose node carries
// a symbol compatible with required (the CHAR->INT case in
// particular) even when its computed result datatype diverges,
// mirroring check_return_aux's fallback to validate_return_type
// before finally reporting a mismatch.
func validateReturnType(required symbols.Datatype, expr *ast.Node) bool {
	if expr == nil || expr.Symbol == nil {
		return false
	}
	return compareDatatypes(required, expr.Symbol.Datatype)
}
