package ast

import "corec/internal/symbols"

// MaxSons bounds the fixed fan-out every node carries (§3.2): enough
// for the richest production (IF_ELSE: cond, then-branch, else-branch)
// plus one spare slot that no node kind fills, without resorting to a
// variable-length child slice.
const MaxSons = 4

// Node is the single tagged struct every tree shape in this language
// is built from (§3.2). There is no sum-of-variants hierarchy: a
// FUNC_CALL and a LOOP are both *Node, distinguished only by Kind and
// by which of Sons/Symbol/ResultType are meaningful for that kind.
type Node struct {
	ID   uint32
	Kind Kind
	Line int

	Sons [MaxSons]*Node

	// Symbol binds IDENTIFIER, VEC_ACCESS, FUNC_CALL and every
	// declaration node to its interned symbols.Symbol.
	Symbol *symbols.Symbol

	// ResultType is filled in by expression_typecheck (§4.3.3) and
	// starts Unset on every freshly built node.
	ResultType symbols.Datatype

	// Typechecked is set once expression_typecheck has computed this
	// node's ResultType. It is a record only: the memoization of
	// repeat visits lives in sema.Context's per-node-ID cache, which
	// does not read this bit.
	Typechecked bool

	// FuncParam names the formal parameter an EXPR_LIST argument node
	// binds to; the TAC generator uses it as the name carried by that
	// argument's ARG instruction.
	FuncParam string
}

// Son returns the i-th child, or nil if absent or i is out of range.
func (n *Node) Son(i int) *Node {
	if n == nil || i < 0 || i >= MaxSons {
		return nil
	}
	return n.Sons[i]
}

// IsLeaf reports whether n has no non-nil children.
func (n *Node) IsLeaf() bool {
	if n == nil {
		return true
	}
	for _, s := range n.Sons {
		if s != nil {
			return false
		}
	}
	return true
}
