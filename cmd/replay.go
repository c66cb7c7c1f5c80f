package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/reveal/internal/logging"
	"github.com/papapumpkin/reveal/internal/reveal"
	"github.com/papapumpkin/reveal/internal/trace"
	"github.com/papapumpkin/reveal/internal/ui"
)

var replayCmd = &cobra.Command{
	Use:   "replay TRACE.toml",
	Short: "Replay a scripted drag trace and print every notification",
	Long: `Replay feeds the steps of a TOML trace to a fresh controller built from
the current configuration and prints each position change, pane attach and
detach, and bounce-back as it happens. Steps that violate the pane contract
in strict mode are reported and make the command fail.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().String("events", "", "append JSONL telemetry events to this file")
	replayCmd.Flags().Bool("quiet", false, "only print the final state")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.Verbose)

	tr, err := trace.Load(args[0])
	if err != nil {
		return err
	}

	observer, closeEvents, err := eventsObserver(cmd, log)
	if err != nil {
		return err
	}
	defer closeEvents()

	opts := append(cfg.Options(), reveal.WithLogger(log))
	res, err := trace.Replay(tr, cfg.Geometry(), observer, opts...)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		if tr.Name != "" {
			printer.Info(tr.Name)
		}
		printer.Geometry(res.Reveal)
	}

	var failed int
	for _, step := range res.Steps {
		if !quiet {
			for _, ev := range step.Events {
				printer.Event(step.Index, ev)
			}
			if step.Release != nil {
				printer.Release(*step.Release)
			}
		}
		if step.Err != nil {
			failed++
			printer.Error(fmt.Sprintf("step %d: %v", step.Index, step.Err))
		}
	}
	printer.Final(res.Reveal)

	if failed > 0 {
		return fmt.Errorf("%d step(s) failed", failed)
	}
	return nil
}
