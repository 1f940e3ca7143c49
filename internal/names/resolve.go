package names

import "tertulia/internal/textutil"

// Resolve maps a raw mention onto a canonical name. Exact canonical and
// exact alias matches win outright; otherwise the best fuzzy match against
// every canonical name and alias at or above the threshold is returned.
// Canonicals are scanned in first-registered order and only a strictly
// better score displaces the current best, so ties resolve to the earliest
// registration. ok is false when nothing reaches the threshold.
func (r *Registry) Resolve(candidate string, threshold float64) (canonical string, score float64, ok bool) {
	if r.IsCanonical(candidate) {
		return candidate, 100, true
	}
	if target, found := r.AliasTarget(candidate); found {
		return target, 100, true
	}

	best := ""
	bestScore := 0.0
	for _, name := range r.canonical {
		if s := textutil.Ratio(candidate, name); s >= threshold && s > bestScore {
			best, bestScore = name, s
		}
		for _, alias := range r.aliases[name] {
			if s := textutil.Ratio(candidate, alias); s >= threshold && s > bestScore {
				best, bestScore = name, s
			}
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}
