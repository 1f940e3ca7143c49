package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tertulia/internal/episode"
	"tertulia/internal/links"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	var (
		clean           bool
		buildExclusions bool
		checkDomain     string
		freqThreshold   int
		nonInteractive  bool
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Curate the reference links of the master collection",
		Long: `Remove boilerplate from the per-episode reference links: URLs repeated
across many episodes, links on excluded domains, and ad-hoc domain matches.
The exclusion list itself is built from a domain census with per-domain
confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			dec := ctx.provider(nonInteractive)

			exclusions, err := links.LoadExclusions(cfg.Master.ExclusionList)
			if err != nil {
				return err
			}

			if buildExclusions {
				_, episodes, err := loadMaster(ctx, false)
				if err != nil {
					return err
				}
				census := links.DomainCensus(collectLinks(episodes), exclusions)
				rows := make([][]string, 0, len(census))
				for _, row := range census {
					mark := ""
					if row.Excluded {
						mark = "excluded"
					}
					rows = append(rows, []string{row.Domain, itoa(row.Links), mark})
				}
				fmt.Fprintln(out, renderTable([]string{"Domain", "Links", ""}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))

				updated := links.BuildExclusions(census, exclusions, dec)
				if dryRun {
					fmt.Fprintf(out, "dry run: %d domain(s) would be excluded\n", len(updated))
					return nil
				}
				if err := links.SaveExclusions(cfg.Master.ExclusionList, updated); err != nil {
					return err
				}
				fmt.Fprintf(out, "%d domain(s) excluded, written to %s\n", len(updated), cfg.Master.ExclusionList)
				return nil
			}

			store, episodes, err := loadMaster(ctx, !dryRun)
			if err != nil {
				return err
			}
			if !dryRun {
				defer store.Release()
			}

			// The frequency and exclusion policies belong to --clean; a
			// bare --check-domain run only reviews the matching links.
			opts := links.Options{CheckDomain: checkDomain}
			if clean {
				opts.FrequencyThreshold = freqThreshold
				if !cmd.Flags().Changed("frequency-threshold") {
					opts.FrequencyThreshold = cfg.Matching.LinkFrequencyThreshold
				}
				opts.Exclusions = exclusions
			}
			curated, stats := links.Curate(collectLinks(episodes), opts, dec, log)
			for i := range episodes {
				if kept, ok := curated[episodes[i].Number]; ok {
					episodes[i].RefLinks = kept
				}
			}

			status, err := saveMaster(store, episodes, dec, dryRun, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, summaryTable([][]string{
				{"Frequency threshold", itoa(opts.FrequencyThreshold)},
				{"URLs auto-removed", itoa(stats.AutoRemoved)},
				{"URLs removed on confirm", itoa(stats.ConfirmRemoved)},
				{"Excluded domains cleared", itoa(stats.DomainsCleared)},
				{"Link occurrences removed", itoa(stats.LinksRemoved)},
				{"Result", status},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Apply the link removal policies to the master")
	cmd.Flags().BoolVar(&buildExclusions, "build-exclusions", false, "Build the domain exclusion list interactively")
	cmd.Flags().StringVar(&checkDomain, "check-domain", "", "Also review links whose host contains this substring")
	cmd.Flags().IntVar(&freqThreshold, "frequency-threshold", 0, "Episode count above which a repeated URL is removed (default from config)")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Answer every prompt with its default")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply and report without writing")
	cmd.MarkFlagsOneRequired("clean", "build-exclusions", "check-domain")
	cmd.MarkFlagsMutuallyExclusive("clean", "build-exclusions")
	cmd.MarkFlagsMutuallyExclusive("build-exclusions", "check-domain")
	cmd.MarkFlagsMutuallyExclusive("build-exclusions", "frequency-threshold")

	return cmd
}

// collectLinks indexes every episode's reference links by episode number.
func collectLinks(episodes []episode.Episode) map[string][]string {
	byEpisode := make(map[string][]string, len(episodes))
	for _, ep := range episodes {
		byEpisode[ep.Number] = ep.RefLinks
	}
	return byEpisode
}
