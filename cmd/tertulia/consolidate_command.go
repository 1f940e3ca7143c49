package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tertulia/internal/master"
	"tertulia/internal/merge"
	"tertulia/internal/sources"
)

func newConsolidateCommand(ctx *commandContext) *cobra.Command {
	var (
		reportOnly     bool
		dryRun         bool
		output         string
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge the source snapshots into the master collection",
		Long: `Merge the audio feed, guest listing and web parse snapshots into the
consolidated episode collection. Parts with the same episode number are
grouped into one episode; conflicting titles or images are resolved through
a prompt (first-seen value wins by default).`,
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

			if reportOnly {
				store := master.NewStore(cfg.Master.Path, log)
				episodes, err := store.Load()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, reportTable(master.BuildReport(episodes)))
				return nil
			}

			feed, err := sources.LoadFeedIndex(cfg.Sources.AudioFeedJSON)
			if err != nil {
				return err
			}
			guests, err := sources.LoadGuestIndex(cfg.Sources.GuestInfoJSON)
			if err != nil {
				return err
			}
			web, err := sources.LoadWebIndex(cfg.Sources.WebParseJSON)
			if err != nil {
				return err
			}

			dec := ctx.provider(nonInteractive)
			episodes, stats := merge.Merge(feed, guests, web, dec, log)

			store := master.NewStore(cfg.Master.Path, log)
			if !dryRun && output == "" {
				if err := store.Acquire(); err != nil {
					return err
				}
				defer store.Release()
			}
			status, err := saveMaster(store, episodes, dec, dryRun, output)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, summaryTable([][]string{
				{"Feed entries", itoa(stats.FeedEntries)},
				{"Skipped (no id)", itoa(stats.Skipped)},
				{"Episodes", itoa(stats.Episodes)},
				{"Parts", itoa(stats.Parts)},
				{"Parts with guest info", itoa(stats.PartsWithInfo)},
				{"Episodes with web data", itoa(stats.EpisodesOnWeb)},
				{"Title conflicts", itoa(stats.TitleConflicts)},
				{"Image conflicts", itoa(stats.ImageConflicts)},
				{"Result", status},
			}))
			fmt.Fprintln(out, reportTable(master.BuildReport(episodes)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reportOnly, "report-only", false, "Print the completion report of the current master and exit")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Merge and report without writing")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this path instead of the master")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Resolve every conflict with its default")
	cmd.MarkFlagsMutuallyExclusive("report-only", "dry-run")
	cmd.MarkFlagsMutuallyExclusive("report-only", "output")

	return cmd
}
