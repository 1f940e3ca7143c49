// Package textscan extracts structured hints from free-form episode
// descriptions: capitalized name candidates for guest completion and
// timestamped topic lines for topic recovery.
package textscan
