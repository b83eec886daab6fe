package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigParsesTableAndDiagnosticsSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corec.toml")
	data := `[table]
buckets = 2003

[diagnostics]
max = 50
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write corec.toml: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Table.Buckets != 2003 {
		t.Fatalf("cfg.Table.Buckets = %d, want 2003", cfg.Table.Buckets)
	}
	if cfg.Diagnostics.Max != 50 {
		t.Fatalf("cfg.Diagnostics.Max = %d, want 50", cfg.Diagnostics.Max)
	}
}

func TestLoadConfigMissingOptionalFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") with no corec.toml present: %v", err)
	}
	if cfg.Table.Buckets != 0 || cfg.Diagnostics.Max != 0 {
		t.Fatalf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadConfigExplicitMissingPathIsAnError(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatalf("expected error for explicitly named missing config file")
	}
}

func TestListUnitFilesFindsOnlyUnitSuffixedFilesSorted(t *testing.T) {
	dir := t.TempDir()
	names := []string{"b.unit", "a.unit", "notes.txt"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte{}, 0o600); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.unit"), []byte{}, 0o600); err != nil {
		t.Fatalf("write nested unit: %v", err)
	}

	got, err := listUnitFiles(dir)
	if err != nil {
		t.Fatalf("listUnitFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.unit"),
		filepath.Join(dir, "b.unit"),
		filepath.Join(sub, "c.unit"),
	}
	if len(got) != len(want) {
		t.Fatalf("listUnitFiles returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("listUnitFiles[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
