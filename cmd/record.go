package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/reveal/internal/trace"
	"github.com/papapumpkin/reveal/internal/ui"
)

var recordCmd = &cobra.Command{
	Use:   "record OUT.toml",
	Short: "Write a linear drag trace",
	Long: `Record writes a TOML trace that drags the front pane from --from to --to
in --samples even steps and releases it with --velocity. The result can be
edited by hand and fed to "reveal replay".`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().Float64("from", 0, "starting offset")
	recordCmd.Flags().Float64("to", 0, "final offset")
	recordCmd.Flags().Int("samples", 8, "number of drag samples")
	recordCmd.Flags().Float64("velocity", 0, "release velocity")
	_ = recordCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetFloat64("from")
	to, _ := cmd.Flags().GetFloat64("to")
	samples, _ := cmd.Flags().GetInt("samples")
	velocity, _ := cmd.Flags().GetFloat64("velocity")
	if samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", samples)
	}

	tr := trace.Linear(from, to, samples, velocity)
	if err := trace.Save(args[0], tr); err != nil {
		return err
	}
	ui.New().Info(fmt.Sprintf("wrote %d steps to %s", len(tr.Steps), args[0]))
	return nil
}
