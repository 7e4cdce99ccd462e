// Package manifest handles perch.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a perch.toml project configuration.
type Manifest struct {
	Project Project     `toml:"project"`
	Cache   CacheConfig `toml:"cache"`
	Dump    DumpConfig  `toml:"dump"`

	// Dir is the directory containing the perch.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// CacheConfig configures the AST cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DumpConfig configures diagnostic dump output.
type DumpConfig struct {
	// TagNumbers prints TAG_<n> instead of schema names.
	TagNumbers bool `toml:"tag-numbers"`

	// Format selects the output of perch dump, "text" or "cbor".
	Format string `toml:"format"`
}

// Load parses a perch.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "perch.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = dir
	m.applyDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadOrDefault is Load, falling back to a default manifest when the
// directory has no perch.toml.
func LoadOrDefault(dir string) (*Manifest, error) {
	if _, err := os.Stat(filepath.Join(dir, "perch.toml")); os.IsNotExist(err) {
		m := &Manifest{Dir: dir}
		m.applyDefaults()
		return m, nil
	}
	return Load(dir)
}

func (m *Manifest) applyDefaults() {
	if m.Dump.Format == "" {
		m.Dump.Format = "text"
	}
	if m.Cache.Path == "" {
		m.Cache.Path = filepath.Join(".perch", "asts.db")
	}
}

// Validate checks the manifest for inconsistent settings.
func (m *Manifest) Validate() error {
	switch m.Dump.Format {
	case "text", "cbor":
	default:
		return fmt.Errorf("unknown dump format %q (want text or cbor)", m.Dump.Format)
	}
	return nil
}

// CachePath returns the cache database path, resolved against the manifest
// directory when relative.
func (m *Manifest) CachePath() string {
	if filepath.IsAbs(m.Cache.Path) {
		return m.Cache.Path
	}
	return filepath.Join(m.Dir, m.Cache.Path)
}
