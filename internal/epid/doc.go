// Package epid canonicalizes episode identifiers. Raw identifiers written by
// hand over fifteen years of show notes arrive as "EP7", "Ep 105_a", or
// "ep.12-bonus"; Normalize folds them all into the Ep###[_Suffix] form the
// rest of the pipeline joins on. Inputs that do not look like an episode id
// at all are returned unchanged with ErrUnparsed so callers can keep them in
// their own bucket instead of dropping them.
package epid
