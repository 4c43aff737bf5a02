// Package logging provides a simple leveled logging interface for the
// asset preparation pipeline.
package logging
