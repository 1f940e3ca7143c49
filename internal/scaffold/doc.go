// Package scaffold renders per-episode descriptive text documents from the
// master list, one file per episode.
package scaffold
