package diag

import (
	"encoding/json"
	"io"
)

// DiagnosticJSON is the wire shape of a single Diagnostic under
// --format json, grounded on diagfmt.DiagnosticJSON: severity renders
// as its string name; code renders as its number, with Name carrying
// the code's string name alongside it.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     Code   `json:"code"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
}

// DiagnosticsOutput is the root JSON value for one unit's worth of
// diagnostics, grounded on diagfmt.DiagnosticsOutput's
// Diagnostics+Count shape.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildOutput renders b's diagnostics, line-sorted, into the JSON wire
// shape without serializing.
func BuildOutput(b *Bag) DiagnosticsOutput {
	sorted := b.Sorted()
	out := make([]DiagnosticJSON, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Name:     d.Code.String(),
			Message:  d.Message,
			Line:     d.Line,
		})
	}
	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// PrintJSON writes b's diagnostics to w as an indented JSON object,
// the --format json counterpart to PrettyPrint's text rendering.
func PrintJSON(w io.Writer, b *Bag) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(b))
}
