package tac

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// lowerFunction wraps a function body between BEGINFUN/ENDFUN
// markers carrying the function's own symbol. Grounded on
// make_function; the original also ran a loop here walking back to
// the BEGINFUN instruction with no side effect (a leftover from some
// earlier version), which is simply dead code and isn't reproduced.
func (g *Generator) lowerFunction(node *ast.Node, code0, code1 *Instr) *Instr {
	beginInstr := Create(OpBeginfun, node.Symbol, nil, nil)
	beginInstr.Prev = code0
	endInstr := Create(OpEndfun, node.Symbol, nil, nil)
	endInstr.Prev = code1

	return Join(beginInstr, endInstr)
}

// lowerCall builds a CALL into a fresh temp. Grounded on make_call.
// The temp's datatype is read from the result of the lowered argument
// list's last instruction, which is always an ARG whose result is the
// untyped parameter-name symbol lowerArg mints (or no code at all for
// a call without arguments), so the call's temp is always Unset. The
// callee's declared return type is not consulted.
func (g *Generator) lowerCall(node *ast.Node, code0, code1 *Instr) *Instr {
	callInstr := Create(OpCall, g.Temps.MakeTemp(datatypeOrZero(code0)), node.Symbol, nil)
	return Join(Join(code0, code1), callInstr)
}

// lowerArg builds one TAC_ARG instruction per call argument, binding
// it to the formal parameter name the call site recorded on the
// EXPR_LIST node. Grounded on make_arg, including its detail of
// minting an ad hoc symbol (never interned into the table) purely to
// carry that parameter name as the instruction's result operand.
func (g *Generator) lowerArg(node *ast.Node, code0, code1 *Instr) *Instr {
	param := &symbols.Symbol{Text: node.FuncParam}
	argInstr := Create(OpArg, param, res(code0), nil)
	argInstr.Prev = code0
	return Join(argInstr, code1)
}

// lowerPrintArg builds one TAC_PRINT_ARG per output parameter: if the
// parameter is itself a string literal, its symbol is used directly
// as the result operand; otherwise the parameter expression's own
// result is used. Grounded on the AST_OUTPUT_PARAM_LIST case of
// generate_code and make_print_arg.
func (g *Generator) lowerPrintArg(node *ast.Node, code0, code1 *Instr) *Instr {
	var printInstr *Instr
	if lit := node.Son(0); lit != nil && lit.Kind == ast.LitString {
		printInstr = Create(OpPrintArg, lit.Symbol, nil, nil)
	} else {
		printInstr = Create(OpPrintArg, res(code0), nil, nil)
	}
	printInstr.Prev = code0
	return Join(printInstr, code1)
}
