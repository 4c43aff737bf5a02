package catalog

import (
	"path/filepath"
	"strings"

	"asset-prep/internal/fingerprint"
)

// Resolution holds pixel dimensions of a source image.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Asset is one manifest record, created once per located source file and
// immutable afterwards. Resolution is nil when it is genuinely unknown.
type Asset struct {
	ID                string                  `json:"id"`
	OriginalName      string                  `json:"original_name"`
	Filename          string                  `json:"filename"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Category          string                  `json:"category"`
	FileSizeBytes     int64                   `json:"file_size_bytes"`
	FileSizeFormatted string                  `json:"file_size_formatted"`
	Resolution        *Resolution             `json:"resolution,omitempty"`
	Fingerprints      fingerprint.Fingerprint `json:"fingerprints"`
	DownloadPath      string                  `json:"download_path"`
}

// Manifest aggregates all asset records from one run. Saving it fully
// replaces any prior manifest; there are no merge semantics.
type Manifest struct {
	GeneratedAt        string  `json:"generated_at"`
	TotalImages        int     `json:"total_images"`
	TotalSizeBytes     int64   `json:"total_size_bytes"`
	TotalSizeFormatted string  `json:"total_size_formatted"`
	Images             []Asset `json:"images"`
}

// AssetID derives the stable identifier from a canonical filename: the
// extension is stripped and separators normalized to underscores.
func AssetID(canonical string) string {
	base := strings.TrimSuffix(canonical, filepath.Ext(canonical))
	return strings.ReplaceAll(base, "-", "_")
}
