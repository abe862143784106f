// Package config resolves the tool's runtime settings.
//
// Settings come from two layers, later layers overriding earlier ones:
//
//  1. built-in defaults embedded from embedded/defaults.toml
//  2. command-line flag values, passed in as flat dotted keys
//
// There is no user configuration file and no environment layer; a run is
// fully described by its command line.
package config
