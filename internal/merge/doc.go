// Package merge joins the three parsed source snapshots into the unified
// episode list: audio feed entries define the parts, the guest listing
// contributes topics and contertulios per part, and the web parse
// contributes the episode page link and references.
package merge
