package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "perch.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing perch.toml: %v", err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "scripts"
version = "0.3.0"

[cache]
enabled = true
path = "build/asts.db"

[dump]
tag-numbers = true
format = "cbor"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Project.Name != "scripts" || m.Project.Version != "0.3.0" {
		t.Errorf("project = %+v", m.Project)
	}
	if !m.Cache.Enabled {
		t.Error("cache not enabled")
	}
	if got, want := m.CachePath(), filepath.Join(dir, "build", "asts.db"); got != want {
		t.Errorf("CachePath = %q, want %q", got, want)
	}
	if !m.Dump.TagNumbers || m.Dump.Format != "cbor" {
		t.Errorf("dump = %+v", m.Dump)
	}
	if m.Dir != dir {
		t.Errorf("Dir = %q, want %q", m.Dir, dir)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := writeManifest(t, `
[project]
name = "bare"
`)
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Dump.Format != "text" {
		t.Errorf("default format = %q, want text", m.Dump.Format)
	}
	if m.Cache.Enabled {
		t.Error("cache enabled by default")
	}
	if got, want := m.CachePath(), filepath.Join(dir, ".perch", "asts.db"); got != want {
		t.Errorf("default CachePath = %q, want %q", got, want)
	}
}

func TestLoadBadFormat(t *testing.T) {
	dir := writeManifest(t, `
[dump]
format = "xml"
`)
	if _, err := Load(dir); err == nil {
		t.Error("Load accepted unknown dump format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of empty dir did not fail")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if m.Dump.Format != "text" || m.Dir != dir {
		t.Errorf("defaults = %+v", m)
	}
}
