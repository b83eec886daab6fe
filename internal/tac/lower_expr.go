package tac

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// datatypeOrZero returns code's result datatype, or Unset if code (or
// its result) is nil — the ternary-with-no-node-fallback shape
// make_unary_operation and the AST_VEC_ACCESS case both use.
func datatypeOrZero(code *Instr) symbols.Datatype {
	if r := res(code); r != nil {
		return r.Datatype
	}
	return symbols.Unset
}

// lowerBinary builds ADD/SUB/.../LT: both operand lists joined, then
// a new instruction computing the result into a fresh temp. Grounded
// on make_binary_operation.
func (g *Generator) lowerBinary(node *ast.Node, op Opcode, code0, code1 *Instr) *Instr {
	datatype := resDatatype(code0, node)
	instr := Create(op, g.Temps.MakeTemp(datatype), res(code0), res(code1))
	return Join(Join(code0, code1), instr)
}

// lowerUnary builds NEG/NOT. Grounded on make_unary_operation, which
// (unlike the binary case) falls back to the zero datatype rather
// than the node's own result type when code0 is absent.
func (g *Generator) lowerUnary(op Opcode, code0 *Instr) *Instr {
	instr := Create(op, g.Temps.MakeTemp(datatypeOrZero(code0)), res(code0), nil)
	return Join(code0, instr)
}

// lowerVecAccess reads one element of a vector into a fresh temp. The
// temp's datatype is taken from the index expression's result (Unset
// when there is no index code), not from the vector's element type.
// Grounded on the AST_VEC_ACCESS case of generate_code.
func (g *Generator) lowerVecAccess(node *ast.Node, code0 *Instr) *Instr {
	instr := Create(OpCopy, g.Temps.MakeTemp(datatypeOrZero(code0)), node.Symbol, res(code0))
	return Join(code0, instr)
}
