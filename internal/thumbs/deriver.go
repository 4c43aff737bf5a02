package thumbs

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"asset-prep/internal/config"
	"asset-prep/internal/logging"
	"asset-prep/internal/media"

	"github.com/disintegration/imaging"
)

// sourceExtensions maps file extensions the deriver will pick up from the
// images directory.
var sourceExtensions = map[string]bool{
	".heic": true, ".heif": true,
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".bmp": true, ".webp": true,
}

// Deriver produces thumbnails for every canonical source asset.
type Deriver struct {
	sourceDir   string
	outputDir   string
	maxWidth    int
	maxHeight   int
	quality     int
	tool        string
	toolTimeout time.Duration
}

// New creates a Deriver from the pipeline configuration.
func New(cfg *config.Config) *Deriver {
	return &Deriver{
		sourceDir:   cfg.ImagesDir,
		outputDir:   cfg.PreviewsDir,
		maxWidth:    cfg.Thumbnails.MaxWidth,
		maxHeight:   cfg.Thumbnails.MaxHeight,
		quality:     cfg.Thumbnails.JPEGQuality,
		tool:        cfg.Thumbnails.Tool,
		toolTimeout: time.Duration(cfg.Thumbnails.ToolTimeoutSeconds) * time.Second,
	}
}

// DeriveAll processes every source asset in name order and returns the
// aggregate summary with per-asset results. Only an unusable output
// directory fails the run; every per-asset failure is absorbed into the
// fallback chain.
func (d *Deriver) DeriveAll(ctx context.Context) (Summary, []Result, error) {
	if err := os.MkdirAll(d.outputDir, 0755); err != nil {
		return Summary{}, nil, fmt.Errorf("create previews dir %s: %w", d.outputDir, err)
	}

	sources, err := d.listSources()
	if err != nil {
		return Summary{}, nil, err
	}
	logging.Info("found %d source images in %s", len(sources), d.sourceDir)

	var summary Summary
	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return summary, results, err
		}

		r := d.Derive(ctx, src)
		summary.add(r)
		results = append(results, r)
	}

	logging.Info("thumbnail run complete: %d completed (%d decoded, %d tool, %d placeholder, %d skipped), %d failed",
		summary.Completed(), summary.Decoded, summary.ToolConverted, summary.Placeholder, summary.Skipped, summary.Failed)
	return summary, results, nil
}

func (d *Deriver) listSources() ([]string, error) {
	entries, err := os.ReadDir(d.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read images dir %s: %w", d.sourceDir, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if sourceExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			sources = append(sources, filepath.Join(d.sourceDir, entry.Name()))
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// Derive runs the fallback chain for a single asset. The possible terminal
// states are skipped, decoded, tool-converted, placeholder and failed; all
// but the last leave exactly one artifact at the output path.
func (d *Deriver) Derive(ctx context.Context, srcPath string) Result {
	base := filepath.Base(srcPath)
	outName := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	outPath := filepath.Join(d.outputDir, outName)
	r := Result{Source: srcPath, Output: outPath}

	// Existing artifacts are trusted as-is, no integrity check.
	if _, err := os.Stat(outPath); err == nil {
		logging.Debug("skip %s: %s exists", base, outName)
		r.Status = StatusSkipped
		return r
	}

	logging.Info("deriving %s -> %s", base, outName)

	err := d.deriveNative(srcPath, outPath)
	if err == nil {
		r.Status = StatusDecoded
		return r
	}
	logging.Debug("native derivation failed for %s: %v", base, err)

	err = d.convertWithTool(ctx, srcPath, outPath)
	if err == nil {
		logging.Info("converted %s with %s", base, d.tool)
		r.Status = StatusToolConverted
		return r
	}
	logging.Debug("tool conversion failed for %s: %v", base, err)

	if err := d.writePlaceholder(outPath); err != nil {
		logging.Error("placeholder synthesis failed for %s: %v", base, err)
		r.Status = StatusFailed
		r.Err = err
		return r
	}

	logging.Warn("no decoder could read %s, placeholder written", base)
	r.Status = StatusPlaceholder
	return r
}

// deriveNative decodes the asset natively, normalizes transparency onto a
// white background, downscales into the bounding box preserving aspect
// ratio, and encodes the JPEG thumbnail.
func (d *Deriver) deriveNative(srcPath, outPath string) error {
	img, err := media.Decode(srcPath)
	if err != nil {
		return err
	}

	flat := media.FlattenOnWhite(img)
	thumb := imaging.Fit(flat, d.maxWidth, d.maxHeight, imaging.Lanczos)

	if err := saveJPEG(thumb, outPath, d.quality); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

func saveJPEG(img image.Image, path string, quality int) error {
	return imaging.Save(img, path, imaging.JPEGQuality(quality))
}
