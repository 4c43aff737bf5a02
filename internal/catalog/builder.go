package catalog

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"asset-prep/internal/config"
	"asset-prep/internal/fingerprint"
	"asset-prep/internal/logging"
)

// Builder produces the manifest from the asset mapping and source directory.
type Builder struct {
	entries      []config.Entry
	sourceDir    string
	destDir      string
	downloadBase string
}

// NewBuilder creates a Builder for the given configuration and mapping.
func NewBuilder(cfg *config.Config, entries []config.Entry) *Builder {
	return &Builder{
		entries:      entries,
		sourceDir:    cfg.SourceDir,
		destDir:      cfg.ImagesDir,
		downloadBase: cfg.DownloadBase,
	}
}

// Build walks the mapping in order, copies each located source file to its
// canonical name and returns the aggregate manifest. A missing source file
// is a logged skip; a file that fails mid-processing aborts only that entry.
// Only an unusable destination directory fails the whole run.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	if err := os.MkdirAll(b.destDir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir %s: %w", b.destDir, err)
	}

	m := &Manifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Images:      make([]Asset, 0, len(b.entries)),
	}

	for _, entry := range b.entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		asset, ok := b.processEntry(entry)
		if !ok {
			continue
		}

		m.Images = append(m.Images, asset)
		m.TotalImages++
		m.TotalSizeBytes += asset.FileSizeBytes
	}

	m.TotalSizeFormatted = FormatSize(m.TotalSizeBytes)
	logging.Info("cataloged %d images, total size %s", m.TotalImages, m.TotalSizeFormatted)
	return m, nil
}

func (b *Builder) processEntry(entry config.Entry) (Asset, bool) {
	srcPath := filepath.Join(b.sourceDir, entry.Source)

	info, err := os.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn("skip %s: not found", entry.Source)
		} else {
			logging.Warn("skip %s: %v", entry.Source, err)
		}
		return Asset{}, false
	}

	logging.Info("processing %s -> %s", entry.Source, entry.Canonical)

	destPath := filepath.Join(b.destDir, entry.Canonical)
	if err := copyFile(srcPath, destPath); err != nil {
		logging.Error("copy failed for %s: %v", entry.Source, err)
		return Asset{}, false
	}

	fp, err := fingerprint.Compute(srcPath)
	if err != nil {
		logging.Error("fingerprint failed for %s: %v", entry.Source, err)
		return Asset{}, false
	}

	res := resolveResolution(srcPath, entry.Source)
	if res != nil {
		logging.Debug("resolution for %s: %dx%d", entry.Source, res.Width, res.Height)
	}

	return Asset{
		ID:                AssetID(entry.Canonical),
		OriginalName:      entry.Source,
		Filename:          entry.Canonical,
		Title:             entry.Title,
		Description:       entry.Description,
		Category:          entry.Category,
		FileSizeBytes:     info.Size(),
		FileSizeFormatted: FormatSize(info.Size()),
		Resolution:        res,
		Fingerprints:      fp,
		DownloadPath:      path.Join(b.downloadBase, entry.Canonical),
	}, true
}
