// Package config loads the pipeline configuration and the asset mapping
// from TOML files. The mapping is treated strictly as data: an ordered
// list of source-to-canonical renames with display metadata.
package config
