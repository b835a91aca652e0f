package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Accept {
		t.Error("accept should default to off")
	}
	if cfg.BackupSuffix != ".bak" {
		t.Errorf("BackupSuffix = %q, want .bak", cfg.BackupSuffix)
	}
	if !cfg.Color {
		t.Error("color should default to on")
	}
	if cfg.Debounce() != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Debounce())
	}
	if cfg.Report.File != "file" || cfg.Report.Line != "line" || cfg.Report.Actual != "actual" {
		t.Errorf("unexpected report paths: %+v", cfg.Report)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accepttest.toml")
	data := `
accept = true
backup_suffix = ".orig"
journal = "edits.jsonl"
debounce_ms = 50

[report]
file = "location.path"
line = "location.line"
actual = "output"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Accept {
		t.Error("accept not read from file")
	}
	if cfg.BackupSuffix != ".orig" {
		t.Errorf("BackupSuffix = %q, want .orig", cfg.BackupSuffix)
	}
	if cfg.Journal != "edits.jsonl" {
		t.Errorf("Journal = %q", cfg.Journal)
	}
	if cfg.Debounce() != 50*time.Millisecond {
		t.Errorf("Debounce = %v, want 50ms", cfg.Debounce())
	}
	if cfg.Report.File != "location.path" || cfg.Report.Actual != "output" {
		t.Errorf("report paths not read: %+v", cfg.Report)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("accept = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAccept, "1")
	t.Setenv("ACCEPTTEST_BACKUP_SUFFIX", ".before")
	t.Setenv("ACCEPTTEST_JOURNAL", "j.jsonl")
	t.Setenv("NO_COLOR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Accept {
		t.Error("env accept override not applied")
	}
	if cfg.BackupSuffix != ".before" {
		t.Errorf("BackupSuffix = %q, want .before", cfg.BackupSuffix)
	}
	if cfg.Journal != "j.jsonl" {
		t.Errorf("Journal = %q, want j.jsonl", cfg.Journal)
	}
	if cfg.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"yes", true}, // not strconv-parsable, non-empty wins
	}
	for _, tt := range tests {
		if got := parseBool(tt.in); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
