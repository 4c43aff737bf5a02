package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Thumbnails contains settings for the thumbnail deriver.
type Thumbnails struct {
	MaxWidth           int    `toml:"max_width"`
	MaxHeight          int    `toml:"max_height"`
	JPEGQuality        int    `toml:"jpeg_quality"`
	Tool               string `toml:"tool"`
	ToolTimeoutSeconds int    `toml:"tool_timeout_seconds"`
}

// Config contains the full pipeline configuration.
type Config struct {
	SourceDir    string `toml:"source_dir"`
	ImagesDir    string `toml:"images_dir"`
	PreviewsDir  string `toml:"previews_dir"`
	ManifestPath string `toml:"manifest_path"`
	MappingPath  string `toml:"mapping_path"`
	DownloadBase string `toml:"download_base"`

	Thumbnails Thumbnails `toml:"thumbnails"`
}

const (
	defaultSourceDir    = "./source"
	defaultImagesDir    = "./samples/images"
	defaultPreviewsDir  = "./samples/previews"
	defaultManifestPath = "./samples/metadata.json"
	defaultMappingPath  = "./assets.toml"
	defaultDownloadBase = "/samples/images"

	defaultMaxWidth    = 400
	defaultMaxHeight   = 300
	defaultJPEGQuality = 85
	defaultTool        = "magick"
	defaultToolTimeout = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SourceDir:    defaultSourceDir,
		ImagesDir:    defaultImagesDir,
		PreviewsDir:  defaultPreviewsDir,
		ManifestPath: defaultManifestPath,
		MappingPath:  defaultMappingPath,
		DownloadBase: defaultDownloadBase,
		Thumbnails: Thumbnails{
			MaxWidth:           defaultMaxWidth,
			MaxHeight:          defaultMaxHeight,
			JPEGQuality:        defaultJPEGQuality,
			Tool:               defaultTool,
			ToolTimeoutSeconds: defaultToolTimeout,
		},
	}
}

// Load reads path, layers it over Default, and validates the result.
// A missing file is not an error: the defaults are returned as-is so the
// pipeline can run against the conventional directory layout.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source_dir must not be empty")
	}
	if c.ImagesDir == "" {
		return errors.New("images_dir must not be empty")
	}
	if c.PreviewsDir == "" {
		return errors.New("previews_dir must not be empty")
	}
	if c.ManifestPath == "" {
		return errors.New("manifest_path must not be empty")
	}
	t := c.Thumbnails
	if t.MaxWidth <= 0 || t.MaxHeight <= 0 {
		return fmt.Errorf("thumbnail envelope %dx%d is not positive", t.MaxWidth, t.MaxHeight)
	}
	if t.JPEGQuality < 1 || t.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality %d outside 1-100", t.JPEGQuality)
	}
	if t.ToolTimeoutSeconds <= 0 {
		return fmt.Errorf("tool_timeout_seconds %d is not positive", t.ToolTimeoutSeconds)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration file.
func SampleConfig() string {
	return sampleConfig
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0644)
}
