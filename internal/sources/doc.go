// Package sources loads and materializes the three per-source snapshots the
// merge engine consumes: the audio feed (RSS XML parsed with gofeed), the
// semi-structured guest/topic listing (block-oriented text parser), and the
// web scrape (stored HTML pages parsed with goquery). Each adapter emits one
// normalized record shape and supports hash-based change detection so
// re-parses only happen when the underlying snapshot changed.
//
// Network fetching is deliberately absent; adapters read bytes something else
// already downloaded.
package sources
