// Package catalog builds the asset manifest: it copies each mapped source
// file to its canonical name, computes content fingerprints and size and
// resolution metadata, and serializes one aggregate JSON manifest per run.
package catalog
