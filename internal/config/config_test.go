package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `# project manifest
entry = "scripts/main.brio"
max_steps = 100000
max_recursion = 256
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Entry != "scripts/main.brio" {
		t.Errorf("entry = %q", m.Entry)
	}
	if m.MaxSteps != 100000 {
		t.Errorf("max_steps = %d", m.MaxSteps)
	}
	if m.MaxRecursion != 256 {
		t.Errorf("max_recursion = %d", m.MaxRecursion)
	}
}

func TestMissingManifestIsNotAnError(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	if m.Entry != "" || m.MaxSteps != 0 {
		t.Errorf("expected zero manifest, got %+v", m)
	}
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	path := writeManifest(t, "name = \"demo\"\nentry = \"main.brio\"\n")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Entry != "main.brio" {
		t.Errorf("entry = %q", m.Entry)
	}
}

func TestMalformedManifest(t *testing.T) {
	if _, err := LoadManifest(writeManifest(t, "entry main.brio\n")); err == nil {
		t.Error("expected error for missing =")
	}
	if _, err := LoadManifest(writeManifest(t, "entry = main.brio\n")); err == nil {
		t.Error("expected error for unquoted string")
	}
	if _, err := LoadManifest(writeManifest(t, "max_steps = many\n")); err == nil {
		t.Error("expected error for non-integer")
	}
}
