package tac

import (
	"fmt"

	"corec/internal/symbols"
)

// LabelKind distinguishes the control-flow site a generated label
// marks, mirroring the original compiler's CONDITIONAL_IF /
// CONDITIONAL_ELSE / CONDITIONAL_ENDIF / LOOP_START / LOOP_END
// make_label arguments — used only to keep generated names readable
// in a dump, never read back by the lowering itself.
type LabelKind uint8

const (
	LabelIf LabelKind = iota
	LabelElse
	LabelEndif
	LabelLoopStart
	LabelLoopEnd
)

func (k LabelKind) prefix() string {
	switch k {
	case LabelIf:
		return "if"
	case LabelElse:
		return "else"
	case LabelEndif:
		return "endif"
	case LabelLoopStart:
		return "loopstart"
	case LabelLoopEnd:
		return "loopend"
	default:
		return "label"
	}
}

// TempGen mints fresh TEMP and LABEL symbols (§4.5), interning each
// one into the shared table so the TAC stream and the symbol table
// never disagree about a synthetic name. Grounded on the
// make_temp/make_label helpers semantic.c and tac.c call throughout
// code generation; the original used bare incrementing counters with
// no visible collision guard against a source identifier, which is
// safe only because "_t" and "_L" are not valid surface-syntax
// identifiers — corec keeps that same assumption.
type TempGen struct {
	table        *symbols.Table
	tempCounter  int
	labelCounter int
}

// NewTempGen builds a TempGen that interns synthetic symbols into
// table.
func NewTempGen(table *symbols.Table) *TempGen {
	return &TempGen{table: table}
}

// MakeTemp mints a fresh TEMP symbol carrying datatype.
func (g *TempGen) MakeTemp(datatype symbols.Datatype) *symbols.Symbol {
	g.tempCounter++
	text := fmt.Sprintf("_t%d", g.tempCounter)
	return g.table.InsertSynthetic(text, symbols.Temp, datatype)
}

// MakeLabel mints a fresh LABEL symbol of the given kind. Labels carry
// no datatype.
func (g *TempGen) MakeLabel(kind LabelKind) *symbols.Symbol {
	g.labelCounter++
	text := fmt.Sprintf("_L%s%d", kind.prefix(), g.labelCounter)
	return g.table.InsertSynthetic(text, symbols.Label, symbols.Unset)
}
