package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_assets.toml
var sampleMapping string

// Entry maps one source file to its canonical identity and display metadata.
type Entry struct {
	Source      string `toml:"source"`
	Canonical   string `toml:"canonical"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

type mappingFile struct {
	Assets []Entry `toml:"asset"`
}

// LoadMapping reads the ordered asset mapping from a TOML file.
// Canonical names must be unique: they are the join key between the catalog
// and the thumbnail deriver.
func LoadMapping(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}

	var mf mappingFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	if len(mf.Assets) == 0 {
		return nil, fmt.Errorf("mapping %s contains no assets", path)
	}

	seen := make(map[string]string, len(mf.Assets))
	for i, e := range mf.Assets {
		if e.Source == "" {
			return nil, fmt.Errorf("mapping %s: asset %d has no source", path, i+1)
		}
		if e.Canonical == "" {
			return nil, fmt.Errorf("mapping %s: asset %q has no canonical name", path, e.Source)
		}
		if prev, dup := seen[e.Canonical]; dup {
			return nil, fmt.Errorf("mapping %s: canonical name %q used by both %q and %q",
				path, e.Canonical, prev, e.Source)
		}
		seen[e.Canonical] = e.Source
	}

	return mf.Assets, nil
}

// SampleMapping returns the embedded sample asset mapping file.
func SampleMapping() string {
	return sampleMapping
}

// WriteSampleMapping writes the embedded sample mapping to path, refusing to
// overwrite an existing file.
func WriteSampleMapping(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create mapping dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleMapping), 0644)
}
