// Package names maintains the registry of canonical contertulio names and
// their aliases, resolves raw mentions against it with fuzzy matching, and
// drives the interactive normalization session that grows it.
package names
