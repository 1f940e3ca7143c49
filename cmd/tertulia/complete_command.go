package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tertulia/internal/complete"
	"tertulia/internal/names"
)

func newCompleteCommand(ctx *commandContext) *cobra.Command {
	var (
		contertulios   bool
		timestamps     bool
		threshold      float64
		nonInteractive bool
		dryRun         bool
		output         string
	)

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Fill missing guest lists and topic timestamps",
		Long: `Fill gaps in the consolidated collection from the raw part descriptions:
suggest guest names for parts without a guest list (confirmed one by one),
or recover timestamped topic lists for parts without one.`,
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

			store, episodes, err := loadMaster(ctx, !dryRun && output == "")
			if err != nil {
				return err
			}
			if !dryRun && output == "" {
				defer store.Release()
			}

			var summary [][]string
			switch {
			case contertulios:
				reg, err := names.LoadRegistry(cfg.Master.RegistryPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("threshold") {
					threshold = cfg.Matching.FuzzyThreshold
				}
				stats := complete.Contertulios(episodes, reg, threshold, dec, out, log)
				summary = append(summary,
					[]string{"Parts without guests", itoa(stats.PartsMissing)},
					[]string{"Parts updated", itoa(stats.PartsUpdated)},
					[]string{"Guests added", itoa(stats.GuestsAdded)},
					[]string{"Suggestions suppressed", itoa(stats.SkippedSingleWord)},
				)

			case timestamps:
				stats := complete.Timestamps(episodes, log)
				cleaned := complete.CleanTopics(episodes, log)
				summary = append(summary,
					[]string{"Parts examined", itoa(stats.PartsTotal)},
					[]string{"Parts without topics", itoa(stats.EmptyTopics)},
					[]string{"With timestamp markers", itoa(stats.WithTimestamps)},
					[]string{"Parts filled", itoa(stats.PartsUpdated)},
					[]string{"Extraction failures", itoa(len(stats.Failures))},
					[]string{"Topic titles cleaned", itoa(cleaned)},
				)
				if len(stats.Failures) > 0 {
					fmt.Fprintf(out, "no topics recovered for: %s\n", strings.Join(stats.Failures, ", "))
				}
			}

			status, err := saveMaster(store, episodes, dec, dryRun, output)
			if err != nil {
				return err
			}
			summary = append(summary, []string{"Result", status})
			fmt.Fprintln(out, summaryTable(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&contertulios, "contertulios", false, "Suggest guest names for parts without a guest list")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "Recover topic lists from timestamped descriptions")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum fuzzy match score for name resolution (default from config)")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Accept every suggestion without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply and report without writing")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this path instead of the master")
	cmd.MarkFlagsOneRequired("contertulios", "timestamps")
	cmd.MarkFlagsMutuallyExclusive("contertulios", "timestamps")
	cmd.MarkFlagsMutuallyExclusive("timestamps", "threshold")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "output")

	return cmd
}
