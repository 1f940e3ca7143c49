// Package textutil provides the string-similarity scoring and filename
// sanitizing shared by the name resolver, the link curator, and the scaffold
// writer. Scores are normalized Levenshtein ratios on the 0-100 scale used
// throughout the registry tooling.
package textutil
