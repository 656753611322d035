// Package config centralizes configuration and filesystem paths for the
// pick-cap arbitrage pipeline.
//
// Configuration is loaded from environment variables (prefix PICKARB) merged
// over an optional YAML file next to the executable, then validated. The
// Paths type is the single source of truth for every file the pipeline reads
// or writes; all paths resolve relative to the executable directory so the
// binaries behave the same regardless of the working directory they are
// invoked from.
package config
