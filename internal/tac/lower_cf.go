package tac

// lowerIf builds a single-branch conditional: the guard's code, a
// JFALSE to a fresh IF label if the guard is false, the then-branch's
// code, then the label itself. Grounded on make_if.
func (g *Generator) lowerIf(code0, code1 *Instr) *Instr {
	ifLabel := g.Temps.MakeLabel(LabelIf)

	jumpInstr := Create(OpJfalse, ifLabel, res(code0), nil)
	jumpInstr.Prev = code0
	labelInstr := Create(OpLabel, ifLabel, nil, nil)
	labelInstr.Prev = code1

	return Join(jumpInstr, labelInstr)
}

// lowerIfElse builds a two-branch conditional: guard code, JFALSE to
// an ELSE label, the then-branch, an unconditional JUMP past the
// else-branch to an ENDIF label, the ELSE label, the else-branch,
// then the ENDIF label. Grounded on make_if_else.
func (g *Generator) lowerIfElse(code0, code1, code2 *Instr) *Instr {
	elseLabel := g.Temps.MakeLabel(LabelElse)
	endLabel := g.Temps.MakeLabel(LabelEndif)

	jumpInstr := Create(OpJfalse, elseLabel, res(code0), nil)
	jumpInstr.Prev = code0

	unconditionalJump := Create(OpJump, endLabel, nil, nil)
	unconditionalJump.Prev = code1

	labelInstr := Create(OpLabel, elseLabel, nil, nil)
	labelInstr.Prev = unconditionalJump

	endInstr := Create(OpLabel, endLabel, nil, nil)
	endInstr.Prev = code2

	return Join(Join(jumpInstr, labelInstr), endInstr)
}

// lowerLoop builds a pre-tested loop: a start label, a JFALSE out of
// the loop past the guard, the body, an unconditional JUMP back to
// the start label, then the end label. Grounded on make_loop.
func (g *Generator) lowerLoop(code0, code1 *Instr) *Instr {
	startLabel := g.Temps.MakeLabel(LabelLoopStart)
	endLabel := g.Temps.MakeLabel(LabelLoopEnd)

	startInstr := Create(OpLabel, startLabel, nil, nil)

	jumpInstr := Create(OpJfalse, endLabel, res(code0), nil)
	jumpInstr.Prev = code0

	unconditionalJump := Create(OpJump, startLabel, nil, nil)
	endInstr := Create(OpLabel, endLabel, nil, nil)

	return Join(Join(Join(startInstr, jumpInstr), Join(code1, unconditionalJump)), endInstr)
}
