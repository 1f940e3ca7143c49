// Package config loads, normalizes, and validates tertulia configuration.
//
// It supplies repository defaults, expands tilde shortcuts, reads TOML files,
// and centralizes every path the pipeline touches: the three source
// snapshots, the master collection, the name registry, and the link policy
// files. Always obtain settings through this package so commands receive
// absolute paths and canonical log options.
package config
