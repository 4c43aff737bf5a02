package catalog

import (
	"regexp"
	"strconv"

	"asset-prep/internal/logging"
	"asset-prep/internal/media"
)

// Matches an embedded WxH token such as "_1440x960" or "_960x640".
var resolutionPattern = regexp.MustCompile(`(\d{3,4})x(\d{3,4})`)

// resolveResolution determines an asset's pixel dimensions: a real decode
// probe first, then a pattern match against the original filename. Returns
// nil when neither works; unknown is a valid answer, not an error.
func resolveResolution(path, originalName string) *Resolution {
	w, h, err := media.Dimensions(path)
	if err == nil {
		return &Resolution{Width: w, Height: h}
	}
	logging.Debug("no decoder resolution for %s: %v", path, err)

	if m := resolutionPattern.FindStringSubmatch(originalName); m != nil {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		return &Resolution{Width: w, Height: h}
	}

	return nil
}
