// Package episode defines the consolidated data model: the per-episode master
// record, its aired parts, topics, and the raw date/duration parsing rules
// shared by the refiner, completion tools, and scaffold writer.
//
// JSON field names match the snapshot files produced by earlier pipeline
// generations, so an existing master collection round-trips byte-compatibly.
package episode
