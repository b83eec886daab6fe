package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format renders d in the original compiler's wire shape: "Semantic
// error: <message> at line <n>", with the "at line N" suffix dropped
// for the zero-line undeclared-identifier case (§6.3).
func Format(d *Diagnostic) string {
	label := "Semantic error"
	if d.Severity == SevWarning {
		label = "Semantic warning"
	}
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", label, d.Message)
	}
	return fmt.Sprintf("%s: %s at line %d", label, d.Message, d.Line)
}

// severityColor maps a Severity to the color the CLI renders it in
// when writing to a terminal (SPEC_FULL §4.10's --color flag).
var severityColor = map[Severity]*color.Color{
	SevInfo:    color.New(color.FgCyan),
	SevWarning: color.New(color.FgYellow),
	SevError:   color.New(color.FgRed, color.Bold),
}

// PrettyPrint writes every diagnostic in b to w, one per line, colored
// by severity via fatih/color. enable controls whether color escapes
// are emitted at all, letting the CLI honor --color=off or a
// non-terminal destination.
func PrettyPrint(w io.Writer, b *Bag, enable bool) {
	for _, d := range b.Sorted() {
		c, ok := severityColor[d.Severity]
		if !ok || !enable {
			fmt.Fprintln(w, Format(d))
			continue
		}
		c.Fprintln(w, Format(d))
	}
}
