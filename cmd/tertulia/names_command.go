package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tertulia/internal/names"
)

func newNamesCommand(ctx *commandContext) *cobra.Command {
	var (
		extractUniques bool
		assisted       bool
		aliasScores    bool
		threshold      float64
	)

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Maintain the guest name registry",
		Long: `Maintain the canonical guest name registry: harvest the raw names that
appear in the master collection, review unmapped names interactively, and
audit the similarity of the existing alias mappings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			reg, err := names.LoadRegistry(cfg.Master.RegistryPath)
			if err != nil {
				return err
			}

			switch {
			case extractUniques:
				_, episodes, err := loadMaster(ctx, false)
				if err != nil {
					return err
				}
				var lists [][]string
				for _, ep := range episodes {
					for _, part := range ep.Parts {
						lists = append(lists, part.Contertulios)
					}
				}
				uniques := names.UniqueNames(lists)
				reg.SetRawUniques(uniques)
				if err := reg.Save(cfg.Master.RegistryPath); err != nil {
					return err
				}
				fmt.Fprintln(out, summaryTable([][]string{
					{"Raw unique names", itoa(len(uniques))},
					{"Canonical names", itoa(reg.Len())},
				}))

			case assisted:
				dec := ctx.provider(false)
				stats := reg.AssistedNormalization(dec, out)
				if err := reg.Save(cfg.Master.RegistryPath); err != nil {
					return err
				}
				fmt.Fprintln(out, summaryTable([][]string{
					{"Names reviewed", itoa(stats.Reviewed)},
					{"Kept as-is", itoa(stats.SelfAliased)},
					{"Merged into existing", itoa(stats.Merged)},
					{"New canonical names", itoa(stats.NewCanonical)},
					{"Skipped", itoa(stats.Skipped)},
				}))

			case aliasScores:
				rows, stats := reg.AliasScores()
				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					if cmd.Flags().Changed("threshold") && row.Score >= threshold {
						continue
					}
					tableRows = append(tableRows, []string{row.Alias, row.Canonical, fmt.Sprintf("%.1f", row.Score)})
				}
				fmt.Fprintln(out, renderTable([]string{"Alias", "Canonical", "Score"}, tableRows, []columnAlignment{alignLeft, alignLeft, alignRight}))
				fmt.Fprintln(out, summaryTable([][]string{
					{"Mappings scored", itoa(stats.Count)},
					{"Min", fmt.Sprintf("%.1f", stats.Min)},
					{"Max", fmt.Sprintf("%.1f", stats.Max)},
					{"Mean", fmt.Sprintf("%.1f", stats.Mean)},
					{"Median", fmt.Sprintf("%.1f", stats.Median)},
					{"Stdev", fmt.Sprintf("%.1f", stats.Stdev)},
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&extractUniques, "extract-uniques", false, "Harvest the distinct raw names from the master collection")
	cmd.Flags().BoolVar(&assisted, "assisted-normalization", false, "Review unmapped raw names interactively")
	cmd.Flags().BoolVar(&aliasScores, "alias-scores", false, "Audit alias-to-canonical similarity scores")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "With --alias-scores, only show mappings scoring below this")
	cmd.MarkFlagsOneRequired("extract-uniques", "assisted-normalization", "alias-scores")
	cmd.MarkFlagsMutuallyExclusive("extract-uniques", "assisted-normalization", "alias-scores")

	return cmd
}
