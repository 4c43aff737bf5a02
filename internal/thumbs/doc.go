// Package thumbs derives one thumbnail per canonical source asset through
// an ordered fallback chain: native decode, external conversion tool,
// synthetic placeholder. Existing outputs are never recomputed.
package thumbs
