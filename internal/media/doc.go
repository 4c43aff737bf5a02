// Package media provides native image decoding for the pipeline: the
// imaging library and registered stdlib decoders for common raster formats,
// libvips for HEIC/AVIF, plus dimension probing and alpha flattening.
package media
