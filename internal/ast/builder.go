package ast

import (
	"fmt"

	"fortio.org/safecast"

	"corec/internal/symbols"
)

// Builder assembles Node trees and hands out monotonically increasing
// IDs, mirroring the teacher's arena-backed Arena[T]/Builder pattern
// (internal/ast/arena.go, internal/ast/builder.go in the reference
// compiler) adapted to a flat, non-generic Node.
type Builder struct {
	next uint32
}

// NewBuilder returns a Builder starting IDs at 1.
func NewBuilder() *Builder {
	return &Builder{}
}

// New allocates a bare node of the given kind/line with no children.
func (b *Builder) New(kind Kind, line int) *Node {
	b.next++
	id, err := safecast.Conv[uint32](b.next)
	if err != nil {
		panic(fmt.Errorf("ast: builder overflow: %w", err))
	}
	return &Node{ID: id, Kind: kind, Line: line}
}

// Leaf builds a node bound to a symbol (IDENTIFIER, literals, VAR/VEC
// declarations) with no children.
func (b *Builder) Leaf(kind Kind, line int, sym *symbols.Symbol) *Node {
	n := b.New(kind, line)
	n.Symbol = sym
	return n
}

// Unary builds a one-child node (NEG, NOT, NESTED_EXPR, RETURN_CMD,
// VAR_ATTRIB, VEC_ACCESS).
func (b *Builder) Unary(kind Kind, line int, son *Node) *Node {
	n := b.New(kind, line)
	n.Sons[0] = son
	return n
}

// Binary builds a two-child node (arithmetic/relational/logical ops,
// VEC_ATTRIB, LOOP).
func (b *Builder) Binary(kind Kind, line int, lhs, rhs *Node) *Node {
	n := b.New(kind, line)
	n.Sons[0] = lhs
	n.Sons[1] = rhs
	return n
}

// Ternary builds a three-child node (IF's {cond, then, _},
// FUNC_DECL's {params, body, _}).
func (b *Builder) Ternary(kind Kind, line int, a, c, d *Node) *Node {
	n := b.New(kind, line)
	n.Sons[0] = a
	n.Sons[1] = c
	n.Sons[2] = d
	return n
}

// Quaternary builds a four-child node (IF_ELSE: cond, then, else, _).
func (b *Builder) Quaternary(kind Kind, line int, a, c, d, e *Node) *Node {
	n := b.New(kind, line)
	n.Sons[0] = a
	n.Sons[1] = c
	n.Sons[2] = d
	n.Sons[3] = e
	return n
}

// Chain threads a sequence of sibling nodes (statements, params,
// call arguments, vector initializers) into a right-leaning spine of
// StmtList/ParamList/ExprList/VecInitList cons cells, so a variable
// number of items can still be reached through the fixed Sons[4]
// shape. An empty items list yields nil.
func (b *Builder) Chain(kind Kind, line int, items []*Node) *Node {
	if len(items) == 0 {
		return nil
	}
	var head *Node
	var tail *Node
	for _, item := range items {
		cell := b.New(kind, line)
		cell.Sons[0] = item
		if head == nil {
			head = cell
		} else {
			tail.Sons[1] = cell
		}
		tail = cell
	}
	return head
}
