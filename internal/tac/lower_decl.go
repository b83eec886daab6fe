package tac

import "corec/internal/ast"

// lowerVarDecl builds a VARDEC recording the declared symbol and its
// initializer literal's symbol directly (not its lowered code — a
// scalar declaration's initializer is always a bare literal, already
// interned, so there is nothing to lower). Grounded on the
// AST_VAR_DECL_* case of generate_code.
func (g *Generator) lowerVarDecl(node *ast.Node) *Instr {
	if init := node.Son(0); init != nil {
		return Create(OpVardec, node.Symbol, init.Symbol, nil)
	}
	return Create(OpVardec, node.Symbol, nil, nil)
}

// lowerVecDecl builds a VECDEC after the size literal's code (son[0]),
// carrying that size as its operand, followed by the initializer
// list's code (son[1], if any). Grounded on the AST_VEC_DECL_* case of
// generate_code.
func (g *Generator) lowerVecDecl(node *ast.Node, code0, code1 *Instr) *Instr {
	decInstr := Create(OpVecdec, node.Symbol, res(code0), nil)
	return Join(Join(code0, decInstr), code1)
}
