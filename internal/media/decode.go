package media

import (
	"fmt"
	"image"
	"os"

	"asset-prep/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// Decode opens an image with every native decoder available: the imaging
// library first, the registered stdlib decoders next, and libvips last for
// formats the pure-Go decoders cannot read (HEIC and friends).
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	logging.Debug("imaging.Open failed for %s: %v, trying fallback methods", path, err)

	img, err = decodeFile(path)
	if err == nil {
		return img, nil
	}
	logging.Debug("standard decode failed for %s: %v", path, err)

	if IsVipsAvailable() {
		img, err = decodeWithVips(path)
		if err == nil {
			return img, nil
		}
		logging.Debug("vips decode failed for %s: %v", path, err)
	}

	return nil, fmt.Errorf("all native decode methods failed for %s: %w", path, err)
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	logging.Debug("decoded image format: %s for %s", format, path)
	return img, nil
}

// Dimensions returns the pixel dimensions of the image at path, reading only
// the header where the format allows it. libvips is consulted for formats
// the registered decoders cannot parse.
func Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	config, _, err := image.DecodeConfig(file)
	if cerr := file.Close(); cerr != nil {
		logging.Warn("failed to close image file %s: %v", path, cerr)
	}
	if err == nil {
		return config.Width, config.Height, nil
	}

	if IsVipsAvailable() {
		return vipsDimensions(path)
	}
	return 0, 0, fmt.Errorf("cannot determine dimensions of %s: %w", path, err)
}
