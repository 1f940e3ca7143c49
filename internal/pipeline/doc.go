// Package pipeline defines the shared failure taxonomy for every tool in the
// repository: fatal load/parse errors that abort before writes, recoverable
// per-record errors, and advisory conditions that require explicit
// confirmation. Commands map these markers to exit codes.
package pipeline
