package tac

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// Generator lowers a checked AST into TAC by recursive post-order
// descent: every node's sons are lowered first, then the results are
// combined according to the node's own kind. Grounded on
// generate_code in tac.c, mirrored switch-case for switch-case and
// split across this file and lower_*.go by concern.
type Generator struct {
	Temps *TempGen
}

// NewGenerator builds a Generator that mints fresh temps/labels into
// table.
func NewGenerator(table *symbols.Table) *Generator {
	return &Generator{Temps: NewTempGen(table)}
}

// res returns code's result symbol, or nil if code itself is nil —
// the Go shape of the original's pervasive "code0 ? code0->res : NULL"
// ternary.
func res(code *Instr) *symbols.Symbol {
	if code == nil {
		return nil
	}
	return code.Res
}

// resDatatype recovers the datatype a binary/unary operation's temp
// should carry: its left operand's datatype if there is one, else the
// node's own already-typechecked result type. Grounded on
// make_binary_operation/make_unary_operation's "datatype =
// code0->res->datatype, else node->result_datatype" fallback.
func resDatatype(code *Instr, node *ast.Node) symbols.Datatype {
	if code != nil && code.Res != nil {
		return code.Res.Datatype
	}
	return node.ResultType
}

// Generate lowers node and its whole subtree into a single
// (possibly nil) instruction list, returned tail-first exactly as
// Join leaves it — call Reverse on the final result before printing
// or walking forward.
func (g *Generator) Generate(node *ast.Node) *Instr {
	if node == nil {
		return nil
	}

	var code [ast.MaxSons]*Instr
	for i := range node.Sons {
		code[i] = g.Generate(node.Son(i))
	}

	switch node.Kind {
	case ast.Identifier, ast.LitInt, ast.LitReal, ast.LitChar:
		return Create(OpSymbol, node.Symbol, nil, nil)

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.And, ast.Or,
		ast.Le, ast.Ge, ast.Eq, ast.Dif, ast.Gt, ast.Lt:
		return g.lowerBinary(node, opcodeFromAST(node.Kind), code[0], code[1])

	case ast.Neg, ast.Not:
		return g.lowerUnary(opcodeFromAST(node.Kind), code[0])

	case ast.VarAttrib:
		return g.lowerVarAttrib(node, code[0])

	case ast.VecAttrib:
		return g.lowerVecAttrib(node, code[0], code[1])

	case ast.VecAccess:
		return g.lowerVecAccess(node, code[0])

	case ast.If:
		return g.lowerIf(code[0], code[1])

	case ast.IfElse:
		return g.lowerIfElse(code[0], code[1], code[2])

	case ast.Loop:
		return g.lowerLoop(code[0], code[1])

	case ast.ReturnCmd:
		return Join(code[0], Create(OpRet, res(code[0]), nil, nil))

	case ast.FuncDeclInt, ast.FuncDeclReal, ast.FuncDeclBool, ast.FuncDeclChar:
		return g.lowerFunction(node, code[0], code[1])

	case ast.FuncCall:
		return g.lowerCall(node, code[0], code[1])

	case ast.ExprList:
		return g.lowerArg(node, code[0], code[1])

	case ast.OutputCmd:
		return Join(code[0], Create(OpPrint, nil, nil, nil))

	case ast.OutputParamList:
		return g.lowerPrintArg(node, code[0], code[1])

	case ast.InputExprInt:
		return Create(OpRead, g.Temps.MakeTemp(symbols.Int), nil, nil)
	case ast.InputExprReal:
		return Create(OpRead, g.Temps.MakeTemp(symbols.Real), nil, nil)
	case ast.InputExprChar:
		return Create(OpRead, g.Temps.MakeTemp(symbols.Char), nil, nil)
	// InputExprBool has no case in the original generate_code switch
	// either — it falls through to the structural default below,
	// which has no sons to join here, so it lowers to nil. Preserved
	// as-is rather than "fixed": a bare input(bool) expression was
	// evidently never exercised by the original compiler's test suite.

	case ast.VarDeclInt, ast.VarDeclReal, ast.VarDeclBool, ast.VarDeclChar:
		return g.lowerVarDecl(node)

	case ast.VecDeclInt, ast.VecDeclReal, ast.VecDeclBool, ast.VecDeclChar:
		return g.lowerVecDecl(node, code[0], code[1])

	default:
		return Join(code[0], Join(code[1], Join(code[2], code[3])))
	}
}

// opcodeFromAST maps an arithmetic/relational/logical/unary AST kind
// to its TAC opcode. Grounded on get_tac_type_from_ast.
func opcodeFromAST(kind ast.Kind) Opcode {
	switch kind {
	case ast.Add:
		return OpAdd
	case ast.Sub:
		return OpSub
	case ast.Mul:
		return OpMul
	case ast.Div:
		return OpDiv
	case ast.And:
		return OpAnd
	case ast.Or:
		return OpOr
	case ast.Le:
		return OpLe
	case ast.Ge:
		return OpGe
	case ast.Eq:
		return OpEq
	case ast.Dif:
		return OpDif
	case ast.Gt:
		return OpGt
	case ast.Lt:
		return OpLt
	case ast.Neg:
		return OpNeg
	case ast.Not:
		return OpNot
	default:
		return OpSymbol
	}
}
