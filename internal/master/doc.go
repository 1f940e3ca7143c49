// Package master persists the unified episode list: strict loading,
// timestamped backups before destructive writes, lock-guarded mutation and
// the end-of-run completion report.
package master
