package tac

import (
	"strings"
	"testing"

	"corec/internal/ast"
	"corec/internal/symbols"
)

func newSym(table *symbols.Table, text string, kind symbols.Kind, dt symbols.Datatype) *symbols.Symbol {
	return table.InsertSynthetic(text, kind, dt)
}

func TestLowerAddBuildsSingleTemp(t *testing.T) {
	table := symbols.NewTable(symbols.Hints{})
	b := ast.NewBuilder()
	g := NewGenerator(table)

	lhs := b.Leaf(ast.Identifier, 1, newSym(table, "a", symbols.Variable, symbols.Int))
	rhs := b.Leaf(ast.Identifier, 1, newSym(table, "b", symbols.Variable, symbols.Int))
	add := b.Binary(ast.Add, 1, lhs, rhs)

	tail := g.Generate(add)
	head := Reverse(tail)

	var lines []string
	for i := head; i != nil; i = i.Next {
		if line := Dump(i); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 1 {
		t.Fatalf("expected exactly one visible instruction (SYMBOL nodes are suppressed), got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "TAC(ADD, _t1, a, b)") {
		t.Fatalf("unexpected dump: %s", lines[0])
	}
}

// TestLowerIfElse mirrors the documented IF_ELSE scenario: a boolean
// guard selects between two assignments, and the resulting TAC must
// contain exactly one JFALSE, one JUMP, two LABELs and two COPYs, with
// the JFALSE as the first visible instruction.
func TestLowerIfElse(t *testing.T) {
	table := symbols.NewTable(symbols.Hints{})
	b := ast.NewBuilder()
	g := NewGenerator(table)

	cond := b.Leaf(ast.Identifier, 1, newSym(table, "flag", symbols.Variable, symbols.Bool))
	thenTarget := newSym(table, "x", symbols.Variable, symbols.Int)
	thenVal := b.Leaf(ast.LitInt, 2, newSym(table, "1", symbols.LiteralInt, symbols.Int))
	thenAssign := b.Unary(ast.VarAttrib, 2, thenVal)
	thenAssign.Symbol = thenTarget

	elseTarget := newSym(table, "x", symbols.Variable, symbols.Int)
	elseVal := b.Leaf(ast.LitInt, 3, newSym(table, "2", symbols.LiteralInt, symbols.Int))
	elseAssign := b.Unary(ast.VarAttrib, 3, elseVal)
	elseAssign.Symbol = elseTarget

	ifElse := b.Quaternary(ast.IfElse, 1, cond, thenAssign, elseAssign, nil)

	tail := g.Generate(ifElse)
	head := Reverse(tail)

	var ops []Opcode
	for i := head; i != nil; i = i.Next {
		if i.Op != OpSymbol {
			ops = append(ops, i.Op)
		}
	}

	wantCounts := map[Opcode]int{OpJfalse: 1, OpJump: 1, OpLabel: 2, OpCopy: 2}
	gotCounts := map[Opcode]int{}
	for _, op := range ops {
		gotCounts[op]++
	}
	for op, want := range wantCounts {
		if gotCounts[op] != want {
			t.Fatalf("expected %d %s instructions, got %d (full: %v)", want, op, gotCounts[op], ops)
		}
	}
	if ops[0] != OpJfalse {
		t.Fatalf("expected JFALSE to be the first visible instruction, got %s", ops[0])
	}
}

func TestLowerFunctionWrapsBeginEnd(t *testing.T) {
	table := symbols.NewTable(symbols.Hints{})
	b := ast.NewBuilder()
	g := NewGenerator(table)

	f := newSym(table, "f", symbols.Function, symbols.Int)
	params := b.New(ast.EmptyParamList, 1)
	retVal := b.Leaf(ast.LitInt, 2, newSym(table, "0", symbols.LiteralInt, symbols.Int))
	ret := b.Unary(ast.ReturnCmd, 2, retVal)
	body := b.Chain(ast.StmtList, 2, []*ast.Node{ret})
	decl := b.Ternary(ast.FuncDeclInt, 1, params, body, nil)
	decl.Symbol = f

	tail := g.Generate(decl)
	head := Reverse(tail)

	if head == nil || head.Op != OpBeginfun {
		t.Fatalf("expected BEGINFUN to lead the function's instruction list, got %v", head)
	}
	var last *Instr
	for i := head; i != nil; i = i.Next {
		last = i
	}
	if last == nil || last.Op != OpEndfun {
		t.Fatalf("expected ENDFUN to close the function's instruction list, got %v", last)
	}
}

func TestDumpSuppressesSymbolInstructions(t *testing.T) {
	sym := &symbols.Symbol{Text: "x"}
	instr := Create(OpSymbol, sym, nil, nil)
	if Dump(instr) != "" {
		t.Fatalf("SYMBOL instructions must dump as empty, got %q", Dump(instr))
	}
}
