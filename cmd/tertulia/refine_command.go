package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tertulia/internal/refine"
)

func newRefineCommand(ctx *commandContext) *cobra.Command {
	var (
		addDates        bool
		addDuration     bool
		cleanPromoLinks bool
		cleanTitles     bool
		clearExtractos  string
		titlesTable     bool
		dryRun          bool
		force           bool
	)

	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Apply derived-field transforms to the master collection",
		Long: `Apply one idempotent transform to the consolidated collection: derive
publication dates or total durations from the parts, strip promotional links
or title prefixes, or drop stray extract parts from a numeric episode range.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cfg, _ := ctx.ensureConfig()
			out := cmd.OutOrStdout()

			if titlesTable {
				_, episodes, err := loadMaster(ctx, false)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(episodes))
				for _, ep := range episodes {
					rows = append(rows, []string{ep.Number, ep.Title})
				}
				fmt.Fprintln(out, renderTable([]string{"Episode", "Title"}, rows, []columnAlignment{alignRight, alignLeft}))
				return nil
			}

			store, episodes, err := loadMaster(ctx, !dryRun)
			if err != nil {
				return err
			}
			if !dryRun {
				defer store.Release()
			}
			dec := ctx.provider(false)

			var summary [][]string
			switch {
			case addDates:
				changed := refine.AddPublicationDates(episodes, log)
				summary = append(summary, []string{"Publication dates set", itoa(changed)})
			case addDuration:
				changed := refine.AddTotalDurations(episodes, log)
				summary = append(summary, []string{"Total durations set", itoa(changed)})
			case cleanPromoLinks:
				promo, err := refine.LoadPromoLinks(cfg.Master.PromoLinks)
				if err != nil {
					return err
				}
				perEpisode, total := refine.CleanPromoLinks(episodes, promo, log)
				summary = append(summary,
					[]string{"Promo links loaded", itoa(len(promo))},
					[]string{"Episodes affected", itoa(len(perEpisode))},
					[]string{"Links removed", itoa(total)},
				)
			case cleanTitles:
				affected := refine.CleanTitles(episodes)
				for _, title := range affected {
					fmt.Fprintf(out, "cleaned: %s\n", title)
				}
				summary = append(summary, []string{"Titles cleaned", itoa(len(affected))})
			case clearExtractos != "":
				from, to, err := parseRange(clearExtractos)
				if err != nil {
					return err
				}
				prompt := fmt.Sprintf("Remove extract parts from episodes %d-%d?", from, to)
				if !force && !dec.Confirm(prompt, false) {
					fmt.Fprintln(out, "aborted")
					return nil
				}
				changes := refine.ClearExtractos(episodes, from, to)
				removed := 0
				for _, change := range changes {
					removed += change.Removed
					fmt.Fprintf(out, "Ep%s: %d part(s) removed, %d remaining\n", change.Number, change.Removed, change.Remaining)
				}
				summary = append(summary,
					[]string{"Episodes touched", itoa(len(changes))},
					[]string{"Parts removed", itoa(removed)},
				)
			}

			status, err := saveMaster(store, episodes, dec, dryRun, "")
			if err != nil {
				return err
			}
			summary = append(summary, []string{"Result", status})
			fmt.Fprintln(out, summaryTable(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&addDates, "add-dates", false, "Derive each episode's publication date from its earliest part")
	cmd.Flags().BoolVar(&addDuration, "add-total-duration", false, "Derive each episode's total duration from its parts")
	cmd.Flags().BoolVar(&cleanPromoLinks, "clean-promo-links", false, "Remove the configured promotional links from every episode")
	cmd.Flags().BoolVar(&cleanTitles, "clean-titles", false, "Strip redundant episode-id prefixes from titles")
	cmd.Flags().StringVar(&clearExtractos, "clear-extractos", "", "Remove extract parts from episodes in range FROM-TO")
	cmd.Flags().BoolVar(&titlesTable, "titles-table", false, "Print the episode/title table and exit")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply and report without writing")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.MarkFlagsOneRequired("add-dates", "add-total-duration", "clean-promo-links", "clean-titles", "clear-extractos", "titles-table")
	cmd.MarkFlagsMutuallyExclusive("add-dates", "add-total-duration", "clean-promo-links", "clean-titles", "clear-extractos", "titles-table")

	return cmd
}

// parseRange parses an inclusive "FROM-TO" episode number range.
func parseRange(value string) (int, int, error) {
	first, second, ok := strings.Cut(value, "-")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: expected FROM-TO", value)
	}
	from, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", value, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", value, err)
	}
	if from > to {
		return 0, 0, fmt.Errorf("range %q: start after end", value)
	}
	return from, to, nil
}
