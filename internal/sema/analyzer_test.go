package sema

import (
	"testing"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

func newTestContext() (*Context, *symbols.Table, *ast.Builder) {
	table := symbols.NewTable(symbols.Hints{})
	bag := diag.NewBag(0)
	return NewContext(table, bag, nil), table, ast.NewBuilder()
}

func literalNode(b *ast.Builder, table *symbols.Table, kind ast.Kind, symKind symbols.Kind, dt symbols.Datatype, text string, line int) *ast.Node {
	sym := table.InsertSynthetic(text, symKind, dt)
	return b.Leaf(kind, line, sym)
}

func TestRedeclarationReported(t *testing.T) {
	ctx, table, b := newTestContext()
	x := table.Insert("x", 1)
	decl1 := b.Leaf(ast.VarDeclInt, 1, x)
	decl2 := b.Leaf(ast.VarDeclInt, 2, x)
	root := b.Chain(ast.StmtList, 0, []*ast.Node{decl1, decl2})

	CheckDeclarations(ctx, root)

	if !ctx.Bag.HasErrors() {
		t.Fatalf("expected a redeclaration diagnostic")
	}
	found := false
	for _, d := range ctx.Bag.Items() {
		if d.Code == diag.Redeclared {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.Redeclared among diagnostics, got %+v", ctx.Bag.Items())
	}
}

func TestVectorInitCountMismatch(t *testing.T) {
	ctx, table, b := newTestContext()
	v := table.Insert("v", 1)
	size := literalNode(b, table, ast.LitInt, symbols.LiteralInt, symbols.Int, "3", 1)
	item1 := literalNode(b, table, ast.LitInt, symbols.LiteralInt, symbols.Int, "1", 1)
	item2 := literalNode(b, table, ast.LitInt, symbols.LiteralInt, symbols.Int, "2", 1)
	initCell1 := b.New(ast.VecInitList, 1)
	initCell1.Sons[0] = item1
	initCell2 := b.New(ast.VecInitList, 1)
	initCell2.Sons[0] = item2
	initCell1.Sons[1] = initCell2

	decl := b.Ternary(ast.VecDeclInt, 1, size, initCell1, nil)
	decl.Symbol = v

	CheckDeclarations(ctx, decl)

	found := false
	for _, d := range ctx.Bag.Items() {
		if d.Code == diag.VecInitWrongCount {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.VecInitWrongCount for 2 items against size 3, got %+v", ctx.Bag.Items())
	}
}

func TestVectorInitLiteralCompatibility(t *testing.T) {
	cases := []struct {
		name    string
		declKind ast.Kind
		itemKind ast.Kind
		wantErr  bool
	}{
		{"int vector accepts int literal", ast.VecDeclInt, ast.LitInt, false},
		{"int vector rejects char literal", ast.VecDeclInt, ast.LitChar, true},
		{"char vector accepts char literal", ast.VecDeclChar, ast.LitChar, false},
		{"char vector accepts int literal", ast.VecDeclChar, ast.LitInt, false},
		{"real vector rejects int literal", ast.VecDeclReal, ast.LitInt, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, table, b := newTestContext()
			v := table.Insert("v", 1)
			size := literalNode(b, table, ast.LitInt, symbols.LiteralInt, symbols.Int, "1", 1)
			item := literalNode(b, table, tc.itemKind, symbols.LiteralInt, symbols.Int, "1", 1)
			initCell := b.New(ast.VecInitList, 1)
			initCell.Sons[0] = item

			decl := b.Ternary(tc.declKind, 1, size, initCell, nil)
			decl.Symbol = v

			CheckDeclarations(ctx, decl)

			found := false
			for _, d := range ctx.Bag.Items() {
				if d.Code == diag.VecInitWrongType {
					found = true
				}
			}
			if found != tc.wantErr {
				t.Fatalf("VecInitWrongType present = %v, want %v; diagnostics: %+v", found, tc.wantErr, ctx.Bag.Items())
			}
		})
	}
}

func TestUndeclaredIdentifierReported(t *testing.T) {
	ctx, table, _ := newTestContext()
	table.Insert("ghost", 4)

	CheckUndeclared(ctx)

	if ctx.Bag.Len() != 1 || ctx.Bag.Items()[0].Code != diag.Undeclared {
		t.Fatalf("expected exactly one Undeclared diagnostic, got %+v", ctx.Bag.Items())
	}
	if ctx.Bag.Items()[0].Line != 0 {
		t.Fatalf("undeclared diagnostics must carry no line, got %d", ctx.Bag.Items()[0].Line)
	}
}

func TestArithmeticTypeMismatchReported(t *testing.T) {
	ctx, table, b := newTestContext()
	i := table.Insert("i", 1)
	i.Kind = symbols.Variable
	i.Datatype = symbols.Int
	r := table.Insert("r", 1)
	r.Kind = symbols.Variable
	r.Datatype = symbols.Real

	lhs := b.Leaf(ast.Identifier, 5, i)
	rhs := b.Leaf(ast.Identifier, 5, r)
	add := b.Binary(ast.Add, 5, lhs, rhs)

	CheckOperands(ctx, add)

	found := false
	for _, d := range ctx.Bag.Items() {
		if d.Code == diag.OperandsNotSameType {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.OperandsNotSameType for int+real, got %+v", ctx.Bag.Items())
	}
}

func TestMissingReturnReported(t *testing.T) {
	ctx, table, b := newTestContext()
	f := table.Insert("f", 1)
	f.Kind = symbols.Function
	f.Datatype = symbols.Int
	f.IsFunction = true

	emptyParams := b.New(ast.EmptyParamList, 1)
	body := b.New(ast.StmtList, 2)
	funcDecl := b.Ternary(ast.FuncDeclInt, 1, emptyParams, body, nil)
	funcDecl.Symbol = f

	CheckReturn(ctx, funcDecl)

	if ctx.Bag.Len() != 1 || ctx.Bag.Items()[0].Code != diag.ReturnMissing {
		t.Fatalf("expected a ReturnMissing diagnostic, got %+v", ctx.Bag.Items())
	}
}

func TestCallArityMismatchReported(t *testing.T) {
	ctx, table, b := newTestContext()
	f := table.Insert("f", 1)
	f.Kind = symbols.Function
	f.Datatype = symbols.Int
	f.IsFunction = true
	f.Params[0] = symbols.Int
	f.ParamCount = 1

	call := b.Ternary(ast.FuncCall, 6, nil, nil, nil)
	call.Symbol = f

	CheckFunctionCall(ctx, call)

	if ctx.Bag.Len() != 1 || ctx.Bag.Items()[0].Code != diag.CallArityMismatch {
		t.Fatalf("expected a CallArityMismatch diagnostic for a no-arg call to a 1-arg function, got %+v", ctx.Bag.Items())
	}
}

func TestConditionalNonBooleanReported(t *testing.T) {
	ctx, table, b := newTestContext()
	i := table.Insert("i", 1)
	i.Kind = symbols.Variable
	i.Datatype = symbols.Int
	cond := b.Leaf(ast.Identifier, 7, i)
	cond.ResultType = symbols.Int

	ifNode := b.Ternary(ast.If, 7, cond, b.New(ast.StmtList, 7), nil)

	CheckConditionalStmts(ctx, ifNode)

	if ctx.Bag.Len() != 1 || ctx.Bag.Items()[0].Code != diag.ConditionNotBoolean {
		t.Fatalf("expected a ConditionNotBoolean diagnostic, got %+v", ctx.Bag.Items())
	}
}
