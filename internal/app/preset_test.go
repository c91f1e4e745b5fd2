package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPresetFlattensSection(t *testing.T) {
	path := writePreset(t, `
[life]
w = 128
h = 64

[nbody]
n = 4096
force = "lj"
g = 1e-4
`)

	cfg, err := LoadPreset(path, "nbody")
	if err != nil {
		t.Fatal(err)
	}
	if cfg["n"] != "4096" {
		t.Fatalf("n = %q, want 4096", cfg["n"])
	}
	if cfg["force"] != "lj" {
		t.Fatalf("force = %q, want lj", cfg["force"])
	}
	if cfg["g"] != "0.0001" {
		t.Fatalf("g = %q, want 0.0001", cfg["g"])
	}
}

func TestLoadPresetMissingSection(t *testing.T) {
	path := writePreset(t, "[life]\nw = 8\n")

	cfg, err := LoadPreset(path, "mandelbrot")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg) != 0 {
		t.Fatalf("missing section should yield an empty map, got %v", cfg)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "nope.toml"), "life"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadPresetBadTOML(t *testing.T) {
	path := writePreset(t, "[life\nbroken")
	if _, err := LoadPreset(path, "life"); err == nil {
		t.Fatal("expected a parse error")
	}
}
