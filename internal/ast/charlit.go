package ast

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsSingleGrapheme reports whether text is valid UTF-8 and normalizes
// (NFC) to exactly one codepoint, the shape a CHAR literal must have.
// Grounded on intrinsic_string.go's "validate, then norm.NFC.String"
// pattern for incoming string bytes; a CHAR literal is the one-rune
// special case of that same check.
func IsSingleGrapheme(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}
	normalized := norm.NFC.String(text)
	_, size := utf8.DecodeRuneInString(normalized)
	return size > 0 && size == len(normalized)
}
