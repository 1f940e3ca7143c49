// Package main hosts the tertulia CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into runs of
// the episode pipeline: source snapshot parsing, consolidation, link
// curation, name normalization, completion passes, refinement transforms and
// scaffold generation. It centralizes configuration resolution, structured
// logging setup and interactive-prompt wiring so subcommands can focus on
// user experience instead of plumbing.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
