// Package complete fills gaps in the merged episode list from the evidence
// already present in it: guest lists recovered from description text via the
// name registry, and topic timestamps recovered from timestamp markers.
package complete
