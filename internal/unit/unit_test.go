package unit

import (
	"bytes"
	"path/filepath"
	"testing"

	"corec/internal/ast"
	"corec/internal/symbols"
)

func buildSample() (*ast.Node, *symbols.Table) {
	table := symbols.NewTable(symbols.Hints{})
	b := ast.NewBuilder()
	x := table.Insert("x", 1)
	x.Kind = symbols.Variable
	x.Datatype = symbols.Int

	lit := b.Leaf(ast.LitInt, 1, table.InsertSynthetic("1", symbols.LiteralInt, symbols.Int))
	assign := b.Unary(ast.VarAttrib, 1, lit)
	assign.Symbol = x
	root := b.Chain(ast.StmtList, 0, []*ast.Node{assign})
	return root, table
}

func TestFromAnalysisRoundTripsThroughEncodeDecode(t *testing.T) {
	root, table := buildSample()
	u := FromAnalysis("sample.src", 1, root, table)

	var buf bytes.Buffer
	if err := Encode(u, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.SourcePath != u.SourcePath || decoded.RootID != u.RootID {
		t.Fatalf("round trip lost identity: got %+v", decoded)
	}
	if len(decoded.Nodes) != len(u.Nodes) || len(decoded.Symbols) != len(u.Symbols) {
		t.Fatalf("round trip lost records: nodes %d/%d symbols %d/%d",
			len(decoded.Nodes), len(u.Nodes), len(decoded.Symbols), len(u.Symbols))
	}
}

func TestRebuildReconstructsShapeAndSymbolLinks(t *testing.T) {
	root, table := buildSample()
	u := FromAnalysis("sample.src", 1, root, table)

	gotRoot, gotTable := u.Rebuild()
	if gotRoot == nil || gotRoot.Kind != root.Kind {
		t.Fatalf("expected rebuilt root kind %v, got %+v", root.Kind, gotRoot)
	}
	assign := gotRoot.Son(0)
	if assign == nil || assign.Kind != ast.VarAttrib {
		t.Fatalf("expected rebuilt root's first child to be the VAR_ATTRIB node, got %+v", assign)
	}
	if assign.Symbol == nil || assign.Symbol.Text != "x" || assign.Symbol.Datatype != symbols.Int {
		t.Fatalf("expected the assignment's Symbol to rebind to the original 'x' symbol, got %+v", assign.Symbol)
	}
	if gotTable.Len() != table.Len() {
		t.Fatalf("expected rebuilt table to carry %d symbols, got %d", table.Len(), gotTable.Len())
	}
}

func TestDiskCachePutGetRoundTrips(t *testing.T) {
	root, table := buildSample()
	u := FromAnalysis("sample.src", 1, root, table)

	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "units"))
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	key := HashSource([]byte("var int x = 1;"))

	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("expected a cache miss before Put, got ok=%v err=%v", ok, err)
	}
	if err := cache.Put(key, u); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected a cache hit after Put, got ok=%v err=%v", ok, err)
	}
	if got.SourcePath != u.SourcePath {
		t.Fatalf("cached Unit lost SourcePath: got %q want %q", got.SourcePath, u.SourcePath)
	}
}
