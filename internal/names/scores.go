package names

import (
	"math"
	"sort"

	"tertulia/internal/textutil"
)

// AliasScore is one alias->canonical mapping with its similarity ratio.
type AliasScore struct {
	Alias     string
	Canonical string
	Score     float64
}

// ScoreStats summarizes the similarity of non-trivial alias mappings.
type ScoreStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
}

// AliasScores computes the similarity ratio of every alias to its canonical
// name, skipping perfect matches (self-aliases score 100 by definition).
// Rows come back sorted by ascending score so the weakest mappings, the ones
// most worth reviewing, list first.
func (r *Registry) AliasScores() ([]AliasScore, ScoreStats) {
	var rows []AliasScore
	for _, pair := range r.AliasPairs() {
		score := textutil.Ratio(pair[0], pair[1])
		if score == 100 {
			continue
		}
		rows = append(rows, AliasScore{Alias: pair[0], Canonical: pair[1], Score: score})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score < rows[j].Score
		}
		return rows[i].Alias < rows[j].Alias
	})

	stats := ScoreStats{Count: len(rows)}
	if len(rows) == 0 {
		return rows, stats
	}
	scores := make([]float64, len(rows))
	sum := 0.0
	stats.Min, stats.Max = rows[0].Score, rows[0].Score
	for i, row := range rows {
		scores[i] = row.Score
		sum += row.Score
		if row.Score < stats.Min {
			stats.Min = row.Score
		}
		if row.Score > stats.Max {
			stats.Max = row.Score
		}
	}
	stats.Mean = sum / float64(len(scores))

	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		stats.Median = (scores[mid-1] + scores[mid]) / 2
	} else {
		stats.Median = scores[mid]
	}

	if len(scores) > 1 {
		variance := 0.0
		for _, s := range scores {
			variance += (s - stats.Mean) * (s - stats.Mean)
		}
		stats.Stdev = math.Sqrt(variance / float64(len(scores)-1))
	}
	return rows, stats
}
