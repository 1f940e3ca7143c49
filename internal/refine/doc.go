// Package refine applies idempotent corrective transforms to the merged
// episode list: derived date and duration fields, promotional link removal,
// title prefix cleanup and manual extracto pruning.
package refine
