package main

import "testing"

func TestRootCommandRegistersEverySubcommand(t *testing.T) {
	want := []string{"analyze", "tac", "batch", "version"}
	got := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("rootCmd is missing the %q subcommand", name)
		}
	}
}

func TestTacCommandRegistersPrettyFlag(t *testing.T) {
	if tacCmd.Flags().Lookup("pretty") == nil {
		t.Fatalf("tacCmd has no --pretty flag")
	}
}

func TestAnalyzeCommandRegistersFormatFlag(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("format")
	if flag == nil {
		t.Fatalf("analyzeCmd has no --format flag")
	}
	if flag.DefValue != "text" {
		t.Fatalf("analyzeCmd --format default = %q, want %q", flag.DefValue, "text")
	}
}
