package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tertulia/internal/scaffold"
)

func newScaffoldCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Write one descriptive text document per episode",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			_, episodes, err := loadMaster(ctx, false)
			if err != nil {
				return err
			}

			dir := output
			if dir == "" {
				dir = cfg.Master.ScaffoldDir
			}
			stats, err := scaffold.Generate(episodes, dir, log)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summaryTable([][]string{
				{"Episodes", itoa(len(episodes))},
				{"Documents written", itoa(stats.Written)},
				{"Documents unchanged", itoa(stats.Unchanged)},
				{"Directory", dir},
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory for the documents (default from config)")

	return cmd
}
