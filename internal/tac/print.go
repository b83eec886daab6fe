package tac

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"corec/internal/symbols"
)

// textOr0 renders a symbol's text, or the literal digit "0" when sym
// is nil — the Go shape of tac_print's "tac->res && tac->res->text ?
// tac->res->text : 0" ternaries.
func textOr0(sym *symbols.Symbol) string {
	if sym == nil || sym.Text == "" {
		return "0"
	}
	return sym.Text
}

// Dump renders a single instruction in the "TAC(OP, res, op1, op2)"
// form (§6.4). A nil instruction or a SYMBOL instruction renders as
// the empty string, since SYMBOL instructions exist only to carry a
// literal/identifier reference through lowering and are never part of
// the visible program listing — grounded on tac_print's early return
// for TAC_SYMBOL.
func Dump(instr *Instr) string {
	if instr == nil || instr.Op == OpSymbol {
		return ""
	}
	return fmt.Sprintf("TAC(%s, %s, %s, %s)",
		instr.Op, textOr0(instr.Res), textOr0(instr.Op1), textOr0(instr.Op2))
}

// DumpForward writes every instruction from head to the end of its
// Next chain, one non-empty Dump line per instruction. Callers pass
// the result of Reverse(tail) as head. Grounded on tac_print, which
// recurses forward over ->next.
func DumpForward(w io.Writer, head *Instr) {
	for instr := head; instr != nil; instr = instr.Next {
		if line := Dump(instr); line != "" {
			fmt.Fprintln(w, line)
		}
	}
}

// DumpBackward writes every instruction reachable from tail by
// walking Prev first then printing on the way back out, matching
// program order without requiring a prior Reverse call. Grounded on
// tac_print_backwards.
func DumpBackward(w io.Writer, tail *Instr) {
	var walk func(*Instr)
	walk = func(instr *Instr) {
		if instr == nil {
			return
		}
		walk(instr.Prev)
		if line := Dump(instr); line != "" {
			fmt.Fprintln(w, line)
		}
	}
	walk(tail)
}

// opcodeColor picks a fatih/color styling per instruction class,
// purely cosmetic for a terminal dump — labels and jumps stand out
// from plain data movement.
func opcodeColor(op Opcode) *color.Color {
	switch op {
	case OpLabel:
		return color.New(color.FgMagenta, color.Bold)
	case OpJfalse, OpJtrue, OpJump:
		return color.New(color.FgYellow)
	case OpBeginfun, OpEndfun:
		return color.New(color.FgCyan, color.Bold)
	case OpCall, OpArg, OpRet:
		return color.New(color.FgGreen)
	case OpPrint, OpPrintArg, OpRead:
		return color.New(color.FgBlue)
	default:
		return color.New(color.Reset)
	}
}

// padRight pads s with spaces to width display columns, measuring
// display width with mattn/go-runewidth rather than len(s) so
// East-Asian-wide or combining-mark symbol names still line up,
// grounded on internal/diagfmt/pretty.go's runewidth-based column
// math.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PrettyDumpForward is DumpForward with each opcode name colorized
// (when enable is true) and the res/op1/op2 columns aligned to the
// widest entry in the listing, for an interactive terminal dump (§4.10
// --pretty); the plain §6.4 form is DumpForward.
func PrettyDumpForward(w io.Writer, head *Instr, enable bool) {
	var rows []*Instr
	for instr := head; instr != nil; instr = instr.Next {
		if instr.Op != OpSymbol {
			rows = append(rows, instr)
		}
	}

	opWidth, resWidth, op1Width, op2Width := 0, 0, 0, 0
	for _, instr := range rows {
		opWidth = max(opWidth, runewidth.StringWidth(instr.Op.String()))
		resWidth = max(resWidth, runewidth.StringWidth(textOr0(instr.Res)))
		op1Width = max(op1Width, runewidth.StringWidth(textOr0(instr.Op1)))
		op2Width = max(op2Width, runewidth.StringWidth(textOr0(instr.Op2)))
	}

	for _, instr := range rows {
		opName := padRight(instr.Op.String(), opWidth)
		if enable {
			opName = opcodeColor(instr.Op).Sprint(opName)
		}
		fmt.Fprintf(w, "TAC(%s, %s, %s, %s)\n", opName,
			padRight(textOr0(instr.Res), resWidth),
			padRight(textOr0(instr.Op1), op1Width),
			padRight(textOr0(instr.Op2), op2Width))
	}
}
