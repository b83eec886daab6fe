package ast

import (
	"testing"

	"corec/internal/symbols"
)

func TestBuilderAssignsDistinctIDs(t *testing.T) {
	b := NewBuilder()
	a := b.New(LitInt, 1)
	c := b.New(LitInt, 2)
	if a.ID == c.ID {
		t.Fatalf("builder must hand out distinct IDs, got %d twice", a.ID)
	}
}

func TestBuilderBinaryShape(t *testing.T) {
	b := NewBuilder()
	lhs := b.New(LitInt, 1)
	rhs := b.New(LitInt, 1)
	add := b.Binary(Add, 1, lhs, rhs)

	if add.Son(0) != lhs || add.Son(1) != rhs {
		t.Fatalf("Binary must wire Sons[0]/Sons[1] to lhs/rhs")
	}
	if add.Son(2) != nil || add.Son(3) != nil {
		t.Fatalf("unused son slots must stay nil")
	}
}

func TestChainBuildsSpine(t *testing.T) {
	b := NewBuilder()
	items := []*Node{b.New(LitInt, 1), b.New(LitInt, 2), b.New(LitInt, 3)}
	spine := b.Chain(StmtList, 0, items)

	var got []*Node
	for n := spine; n != nil; n = n.Son(1) {
		got = append(got, n.Son(0))
	}
	if len(got) != 3 || got[0] != items[0] || got[2] != items[2] {
		t.Fatalf("Chain must preserve item order, got %v", got)
	}
}

func TestChainEmptyIsNil(t *testing.T) {
	b := NewBuilder()
	if spine := b.Chain(StmtList, 0, nil); spine != nil {
		t.Fatalf("Chain of no items must return nil, got %v", spine)
	}
}

func TestLeafBindsSymbol(t *testing.T) {
	b := NewBuilder()
	sym := &symbols.Symbol{Text: "x", Kind: symbols.Variable, Datatype: symbols.Int}
	n := b.Leaf(Identifier, 5, sym)
	if n.Symbol != sym || n.Kind != Identifier {
		t.Fatalf("Leaf must bind the given symbol and kind")
	}
	if !n.IsLeaf() {
		t.Fatalf("a node with no sons must report IsLeaf")
	}
}
