package ast

import "testing"

func TestIsSingleGrapheme(t *testing.T) {
	precomposed := "é"
	decomposed := "é"
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"ascii letter", "a", true},
		{"precomposed e-acute", precomposed, true},
		{"decomposed e + combining acute composes to one rune", decomposed, true},
		{"empty string", "", false},
		{"two ascii letters", "ab", false},
		{"invalid utf-8", "\xff\xfe", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSingleGrapheme(tc.text); got != tc.want {
				t.Errorf("IsSingleGrapheme(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
