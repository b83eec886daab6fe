package tac

import "corec/internal/symbols"

// Instr is one three-address-code instruction (§4.4): an opcode plus
// up to three symbol operands, linked both ways so a lowering can
// splice instruction lists together and later walk them forward for
// printing. Res/Op1/Op2 are nil when an opcode doesn't use them (e.g.
// LABEL only uses Res).
type Instr struct {
	Op   Opcode
	Res  *symbols.Symbol
	Op1  *symbols.Symbol
	Op2  *symbols.Symbol
	Prev *Instr
	Next *Instr
}
