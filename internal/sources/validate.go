package sources

import "sort"

// GuestCount is one row of the contertulio census.
type GuestCount struct {
	Name  string
	Count int
}

// ListingReport summarizes a parsed guest listing for display.
type ListingReport struct {
	Total             int
	ByType            map[string]int
	WithContertulios  int
	WithTimestamps    int
	MultipleTimestamp int
	Guests            []GuestCount
}

// AnalyzeListing computes totals by entry type, coverage counts and a
// contertulio census sorted by appearances (name as tie-break).
func AnalyzeListing(entries []GuestEntry) ListingReport {
	report := ListingReport{
		Total:  len(entries),
		ByType: make(map[string]int),
	}
	census := make(map[string]int)
	for _, entry := range entries {
		report.ByType[entry.EntryType]++
		if len(entry.Contertulios) > 0 {
			report.WithContertulios++
		}
		stamped := false
		for _, topic := range entry.Topics {
			if topic.Timestamp != "" {
				stamped = true
				break
			}
		}
		if stamped {
			report.WithTimestamps++
		}
		if entry.HasMultipleTimestamps {
			report.MultipleTimestamp++
		}
		for _, guest := range entry.Contertulios {
			census[guest]++
		}
	}
	for name, count := range census {
		report.Guests = append(report.Guests, GuestCount{Name: name, Count: count})
	}
	sort.Slice(report.Guests, func(i, j int) bool {
		if report.Guests[i].Count != report.Guests[j].Count {
			return report.Guests[i].Count > report.Guests[j].Count
		}
		return report.Guests[i].Name < report.Guests[j].Name
	})
	return report
}
