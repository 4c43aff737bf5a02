// Command asset-prep prepares a directory of source images for publishing:
// it copies each mapped file to a canonical name, writes a JSON manifest
// with fingerprints and metadata, and derives one thumbnail per asset with
// a decoder fallback chain.
package main
