package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tertulia/internal/config"
	"tertulia/internal/fileutil"
	"tertulia/internal/sources"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	var (
		parseFeed    bool
		parseCbinfo  bool
		parseWeb     bool
		normalizeIDs string
		displayIDs   string
		validate     bool
		force        bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Parse and inspect the source snapshots",
		Long: `Parse the locally stored source material (RSS feed XML, guest listing
text, episode HTML pages) into JSON snapshots, normalize the episode
identifiers they carry, and validate the guest listing contents.

Sources are named feed, cbinfo and web.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case parseFeed:
				if !force && !sources.IsOutdated(cfg.Sources.AudioFeedXML, cfg.Sources.AudioFeedJSON) {
					fmt.Fprintln(out, "feed snapshot up to date (use --force to re-parse)")
					return nil
				}
				entries, err := sources.ParseFeed(cfg.Sources.AudioFeedXML)
				if err != nil {
					return err
				}
				status := "dry run, nothing written"
				if !dryRun {
					if err := sources.WriteSnapshot(cfg.Sources.AudioFeedJSON, cfg.Sources.AudioFeedXML, entries); err != nil {
						return err
					}
					status = "written: " + cfg.Sources.AudioFeedJSON
				}
				withID := 0
				for _, entry := range entries {
					if entry.EpisodeID != "" {
						withID++
					}
				}
				fmt.Fprintln(out, summaryTable([][]string{
					{"Feed items", itoa(len(entries))},
					{"With episode id", itoa(withID)},
					{"Result", status},
				}))

			case parseCbinfo:
				if !force && !sources.IsOutdated(cfg.Sources.GuestInfoText, cfg.Sources.GuestInfoJSON) {
					fmt.Fprintln(out, "guest listing snapshot up to date (use --force to re-parse)")
					return nil
				}
				entries, err := sources.ParseGuestListing(cfg.Sources.GuestInfoText)
				if err != nil {
					return err
				}
				status := "dry run, nothing written"
				if !dryRun {
					if err := sources.WriteSnapshot(cfg.Sources.GuestInfoJSON, cfg.Sources.GuestInfoText, entries); err != nil {
						return err
					}
					status = "written: " + cfg.Sources.GuestInfoJSON
				}
				fmt.Fprintln(out, summaryTable([][]string{
					{"Listing entries", itoa(len(entries))},
					{"Result", status},
				}))

			case parseWeb:
				parsed, failed, err := sources.ParseEpisodeDir(cfg.Sources.WebHTMLDir)
				if err != nil {
					return err
				}
				status := "dry run, nothing written"
				if !dryRun {
					if err := sources.WriteJSON(cfg.Sources.WebParseJSON, parsed); err != nil {
						return err
					}
					status = "written: " + cfg.Sources.WebParseJSON
				}
				if len(failed) > 0 {
					fmt.Fprintf(out, "failed pages: %s\n", strings.Join(failed, ", "))
				}
				fmt.Fprintln(out, summaryTable([][]string{
					{"Pages parsed", itoa(len(parsed))},
					{"Pages failed", itoa(len(failed))},
					{"Result", status},
				}))

			case normalizeIDs != "" || displayIDs != "":
				source := normalizeIDs
				write := true
				if source == "" {
					source = displayIDs
					write = false
				}
				return runNormalizeIDs(cmd, cfg, source, write && !dryRun)

			case validate:
				entries, err := sources.LoadGuestIndex(cfg.Sources.GuestInfoJSON)
				if err != nil {
					return err
				}
				printListingReport(cmd, sources.AnalyzeListing(entries))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&parseFeed, "parse-feed", false, "Parse the RSS feed XML into the feed snapshot")
	cmd.Flags().BoolVar(&parseCbinfo, "parse-cbinfo", false, "Parse the guest listing text into the guest snapshot")
	cmd.Flags().BoolVar(&parseWeb, "parse-web", false, "Parse the stored episode HTML pages into the web snapshot")
	cmd.Flags().StringVar(&normalizeIDs, "normalize-ids", "", "Rewrite episode ids of a snapshot (feed, cbinfo or web) to canonical form")
	cmd.Flags().StringVar(&displayIDs, "display-ids", "", "Show the id normalization of a snapshot without writing")
	cmd.Flags().BoolVar(&validate, "validate", false, "Analyze the guest listing snapshot")
	cmd.Flags().BoolVar(&force, "force", false, "Re-parse even when the snapshot is up to date")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing")
	cmd.MarkFlagsOneRequired("parse-feed", "parse-cbinfo", "parse-web", "normalize-ids", "display-ids", "validate")
	cmd.MarkFlagsMutuallyExclusive("parse-feed", "parse-cbinfo", "parse-web", "normalize-ids", "display-ids", "validate")

	return cmd
}

// runNormalizeIDs loads one snapshot, shows the original-to-canonical id
// table and, when write is set and anything changed, backs the file up and
// rewrites it.
func runNormalizeIDs(cmd *cobra.Command, cfg *config.Config, source string, write bool) error {
	out := cmd.OutOrStdout()

	var (
		path    string
		changed int
		rows    [][2]string
		payload any
	)
	switch source {
	case "feed":
		entries, err := sources.LoadFeedIndex(cfg.Sources.AudioFeedJSON)
		if err != nil {
			return err
		}
		path = cfg.Sources.AudioFeedJSON
		changed, rows = sources.NormalizeFeedIDs(entries)
		payload = entries
	case "cbinfo":
		entries, err := sources.LoadGuestIndex(cfg.Sources.GuestInfoJSON)
		if err != nil {
			return err
		}
		path = cfg.Sources.GuestInfoJSON
		changed, rows = sources.NormalizeGuestIDs(entries)
		payload = entries
	case "web":
		entries, err := sources.LoadWebSnapshot(cfg.Sources.WebParseJSON)
		if err != nil {
			return err
		}
		path = cfg.Sources.WebParseJSON
		var normalized map[string]sources.WebEntry
		normalized, changed, rows = sources.NormalizeWebIDs(entries)
		payload = normalized
	default:
		return fmt.Errorf("unknown source %q (expected feed, cbinfo or web)", source)
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		mark := ""
		if row[0] != row[1] {
			mark = "changed"
		}
		tableRows = append(tableRows, []string{row[0], row[1], mark})
	}
	fmt.Fprintln(out, renderTable([]string{"Original", "Normalized", ""}, tableRows, []columnAlignment{alignLeft, alignLeft, alignLeft}))

	if !write || changed == 0 {
		fmt.Fprintf(out, "%d id(s) changed, nothing written\n", changed)
		return nil
	}
	backup, err := fileutil.BackupFile(path)
	if err != nil {
		return fmt.Errorf("back up snapshot: %w", err)
	}
	if err := sources.WriteJSON(path, payload); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d id(s) changed, written to %s (backup %s)\n", changed, path, backup)
	return nil
}

func printListingReport(cmd *cobra.Command, report sources.ListingReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, summaryTable([][]string{
		{"Entries", itoa(report.Total)},
		{"Episodes", itoa(report.ByType[sources.EntryEpisode])},
		{"Extracts", itoa(report.ByType[sources.EntryExtract])},
		{"Specials", itoa(report.ByType[sources.EntrySpecial])},
		{"Other", itoa(report.ByType[sources.EntryOther])},
		{"With contertulios", itoa(report.WithContertulios)},
		{"With timestamps", itoa(report.WithTimestamps)},
		{"Multiple timestamp blocks", itoa(report.MultipleTimestamp)},
	}))

	rows := make([][]string, 0, len(report.Guests))
	for _, guest := range report.Guests {
		rows = append(rows, []string{guest.Name, itoa(guest.Count)})
	}
	fmt.Fprintln(out, renderTable([]string{"Contertulio", "Appearances"}, rows, []columnAlignment{alignLeft, alignRight}))
}
