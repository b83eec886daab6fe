package tac

import "corec/internal/ast"

// lowerVarAttrib builds a scalar assignment: the expression's code,
// then a COPY into the target symbol. Grounded on the AST_VAR_ATTRIB
// case of generate_code.
func (g *Generator) lowerVarAttrib(node *ast.Node, code0 *Instr) *Instr {
	instr := Create(OpCopy, node.Symbol, res(code0), nil)
	return Join(code0, instr)
}

// lowerVecAttrib builds an indexed assignment: the index expression's
// code, then the value expression's code, then a COPY carrying both
// as operands (res = the vector symbol, op1 = index value, op2 =
// assigned value). Grounded on the AST_VEC_ATTRIB case of
// generate_code.
func (g *Generator) lowerVecAttrib(node *ast.Node, code0, code1 *Instr) *Instr {
	instr := Create(OpCopy, node.Symbol, res(code0), res(code1))
	return Join(code0, Join(code1, instr))
}
