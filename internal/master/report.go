package master

import (
	"fmt"

	"tertulia/internal/episode"
)

// ReportRow is one category of the completion report.
type ReportRow struct {
	Category string
	Complete int
	Missing  int
}

// Percent renders the completion percentage of the row.
func (r ReportRow) Percent() string {
	total := r.Complete + r.Missing
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(r.Complete)/float64(total)*100)
}

// Report summarizes field completeness across the master list.
type Report struct {
	Episodes int
	Parts    int
	Rows     []ReportRow
}

// BuildReport counts populated fields per episode and per part so operators
// can judge data quality without opening the file.
func BuildReport(episodes []episode.Episode) Report {
	report := Report{Episodes: len(episodes)}

	webLinks, refLinks := 0, 0
	topics, guests, dates, audio := 0, 0, 0, 0
	for _, ep := range episodes {
		if ep.WebLink != "" {
			webLinks++
		}
		if len(ep.RefLinks) > 0 {
			refLinks++
		}
		for _, part := range ep.Parts {
			report.Parts++
			if len(part.Topics) > 0 {
				topics++
			}
			if len(part.Contertulios) > 0 {
				guests++
			}
			if part.Date != "" {
				dates++
			}
			if part.ExternalLink != "" {
				audio++
			}
		}
	}

	report.Rows = []ReportRow{
		{Category: "Episodes with web link", Complete: webLinks, Missing: report.Episodes - webLinks},
		{Category: "Episodes with references", Complete: refLinks, Missing: report.Episodes - refLinks},
		{Category: "Parts with topics", Complete: topics, Missing: report.Parts - topics},
		{Category: "Parts with contertulios", Complete: guests, Missing: report.Parts - guests},
		{Category: "Parts with date", Complete: dates, Missing: report.Parts - dates},
		{Category: "Parts with audio page link", Complete: audio, Missing: report.Parts - audio},
	}
	return report
}
