package tac

import (
	"bytes"
	"strings"
	"testing"

	"corec/internal/symbols"
)

func TestPrettyDumpForwardAlignsColumns(t *testing.T) {
	table := symbols.NewTable(symbols.Hints{})
	short := Create(OpAdd, newSym(table, "_t1", symbols.Temp, symbols.Int),
		newSym(table, "a", symbols.Variable, symbols.Int),
		newSym(table, "b", symbols.Variable, symbols.Int))
	long := Create(OpMul, newSym(table, "_t2", symbols.Temp, symbols.Int),
		newSym(table, "longname", symbols.Variable, symbols.Int),
		newSym(table, "c", symbols.Variable, symbols.Int))
	long.Prev = short
	head := Reverse(long)

	var buf bytes.Buffer
	PrettyDumpForward(&buf, head, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}

	addOp1Field := strings.Split(lines[0], ", ")[2]
	mulOp1Field := strings.Split(lines[1], ", ")[2]
	if len(addOp1Field) != len(mulOp1Field) {
		t.Fatalf("expected op1 column padded to equal width, got %q vs %q", addOp1Field, mulOp1Field)
	}
	if !strings.Contains(lines[0], "a  ") {
		t.Fatalf("expected short operand %q padded out to longname's width, got %q", "a", lines[0])
	}
}

func TestPrettyDumpForwardSuppressesSymbolInstructions(t *testing.T) {
	table := symbols.NewTable(symbols.Hints{})
	instr := Create(OpSymbol, newSym(table, "x", symbols.Variable, symbols.Int), nil, nil)

	var buf bytes.Buffer
	PrettyDumpForward(&buf, instr, false)
	if buf.Len() != 0 {
		t.Fatalf("SYMBOL instructions must not appear in a pretty dump, got %q", buf.String())
	}
}
