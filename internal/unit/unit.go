// Package unit flattens an analyzed compilation unit — its AST and
// symbol table — into a serializable snapshot, and keeps a disk cache
// of decoded snapshots keyed by content hash so a batch run can skip
// re-decoding a file whose bytes haven't changed (analysis itself
// still runs every time).
package unit

import (
	"corec/internal/ast"
	"corec/internal/symbols"
)

// schemaVersion guards against decoding a snapshot written by an
// incompatible future layout; bump it whenever a field is added,
// removed, or reinterpreted.
const schemaVersion uint16 = 1

// NodeRecord is one flattened ast.Node: child references become IDs
// (0 means absent) instead of pointers, and Symbol becomes a
// SymbolID into the accompanying Unit.Symbols slice (0 means unbound).
type NodeRecord struct {
	ID          uint32
	Kind        ast.Kind
	Line        int
	Sons        [ast.MaxSons]uint32
	SymbolID    symbols.ID
	ResultType  symbols.Datatype
	Typechecked bool
	FuncParam   string
}

// SymbolRecord is one flattened symbols.Symbol.
type SymbolRecord struct {
	ID         symbols.ID
	Text       string
	Kind       symbols.Kind
	Datatype   symbols.Datatype
	IsVector   bool
	IsFunction bool
	Params     [symbols.MaxParams]symbols.Datatype
	ParamCount int
	FuncID     int
	Line       int
}

// Unit is a self-contained, order-independent snapshot of one
// compiled source file: enough to reconstruct its AST and symbol
// table without re-running the analyzer or TAC generator.
type Unit struct {
	Schema     uint16
	SourcePath string
	LineCount  int
	RootID     uint32
	Nodes      []NodeRecord
	Symbols    []SymbolRecord
}

// FromAnalysis flattens root's reachable node set and every symbol in
// table into a Unit. Symbol identity is preserved via symbols.ID, so
// two NodeRecords that pointed at the same *symbols.Symbol still
// share a SymbolID after a round trip through Encode/Decode.
func FromAnalysis(sourcePath string, lineCount int, root *ast.Node, table *symbols.Table) *Unit {
	u := &Unit{
		Schema:     schemaVersion,
		SourcePath: sourcePath,
		LineCount:  lineCount,
	}
	if root != nil {
		u.RootID = root.ID
	}

	seen := make(map[uint32]bool)
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil || seen[n.ID] {
			return
		}
		seen[n.ID] = true

		var sonIDs [ast.MaxSons]uint32
		for i, son := range n.Sons {
			if son != nil {
				sonIDs[i] = son.ID
			}
		}
		var symID symbols.ID
		if n.Symbol != nil {
			symID = n.Symbol.ID
		}
		u.Nodes = append(u.Nodes, NodeRecord{
			ID:          n.ID,
			Kind:        n.Kind,
			Line:        n.Line,
			Sons:        sonIDs,
			SymbolID:    symID,
			ResultType:  n.ResultType,
			Typechecked: n.Typechecked,
			FuncParam:   n.FuncParam,
		})
		for _, son := range n.Sons {
			walk(son)
		}
	}
	walk(root)

	if table != nil {
		for _, sym := range table.All() {
			u.Symbols = append(u.Symbols, SymbolRecord{
				ID:         sym.ID,
				Text:       sym.Text,
				Kind:       sym.Kind,
				Datatype:   sym.Datatype,
				IsVector:   sym.IsVector,
				IsFunction: sym.IsFunction,
				Params:     sym.Params,
				ParamCount: sym.ParamCount,
				FuncID:     sym.FuncID,
				Line:       sym.Line,
			})
		}
	}

	return u
}

// Rebuild reconstructs the *ast.Node tree and *symbols.Table a Unit
// snapshot was flattened from. Symbols are re-interned in their
// recorded order into a fresh table, which assigns them new
// sequential IDs; each NodeRecord's SymbolID is resolved through a map
// from the ID stored in each SymbolRecord to the re-interned symbol.
func (u *Unit) Rebuild() (*ast.Node, *symbols.Table) {
	return u.RebuildWithHints(symbols.Hints{})
}

// RebuildWithHints is Rebuild with an explicit table sizing hint, for
// callers that read a [table] section out of a corec.toml config
// (cmd/corec/config.go) rather than accepting §4.1's default bucket
// count.
func (u *Unit) RebuildWithHints(hints symbols.Hints) (*ast.Node, *symbols.Table) {
	table := symbols.NewTable(hints)
	symByID := make(map[symbols.ID]*symbols.Symbol, len(u.Symbols))
	for _, sr := range u.Symbols {
		sym := table.InsertSynthetic(sr.Text, sr.Kind, sr.Datatype)
		sym.IsVector = sr.IsVector
		sym.IsFunction = sr.IsFunction
		sym.Params = sr.Params
		sym.ParamCount = sr.ParamCount
		sym.FuncID = sr.FuncID
		sym.Line = sr.Line
		symByID[sr.ID] = sym
	}

	nodeByID := make(map[uint32]*ast.Node, len(u.Nodes))
	for _, nr := range u.Nodes {
		nodeByID[nr.ID] = &ast.Node{
			ID:          nr.ID,
			Kind:        nr.Kind,
			Line:        nr.Line,
			ResultType:  nr.ResultType,
			Typechecked: nr.Typechecked,
			FuncParam:   nr.FuncParam,
		}
	}
	for _, nr := range u.Nodes {
		n := nodeByID[nr.ID]
		for i, sonID := range nr.Sons {
			if sonID != 0 {
				n.Sons[i] = nodeByID[sonID]
			}
		}
		if nr.SymbolID != 0 {
			n.Symbol = symByID[nr.SymbolID]
		}
	}

	return nodeByID[u.RootID], table
}
