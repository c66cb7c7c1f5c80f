package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/reveal/internal/config"
	"github.com/papapumpkin/reveal/internal/logging"
	"github.com/papapumpkin/reveal/internal/tui"
)

// tuiCmd launches the interactive terminal demo.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Drag the front pane around in the terminal",
	Long: `Launch a terminal demo of the reveal layout. Drag the front pane with
the mouse or the arrow keys, release to let it settle, and watch the
controller's notifications scroll by in the front pane. The config file in
use is watched and reapplied when it changes.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Float64("scale", tui.DefaultScale, "offset units per terminal column")
	tuiCmd.Flags().String("log-file", "", "write debug logs to this file")
	tuiCmd.Flags().String("events", "", "append JSONL telemetry events to this file")
	tuiCmd.Flags().Bool("no-watch", false, "do not reload the config file on change")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("reveal tui requires a TTY (terminal)")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath, _ := cmd.Flags().GetString("log-file")
	log, closer, err := logging.OpenFile(logPath, cfg.Verbose)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	scale, _ := cmd.Flags().GetFloat64("scale")
	opts := tui.Options{Config: cfg, Scale: scale, Logger: log}

	observer, closeEvents, err := eventsObserver(cmd, log)
	if err != nil {
		return err
	}
	defer closeEvents()
	opts.Observer = observer

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if path := viper.ConfigFileUsed(); path != "" && !noWatch {
		w, err := config.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		if err := w.Start(); err != nil {
			w.Stop()
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer w.Stop()
		opts.Reloads = w.Reloads
		log.Info("watching config", "path", w.Path)
	}

	log.Debug("starting tui", "scale", scale, "symmetry", cfg.Symmetry, "rear", cfg.Rear.Enabled, "right", cfg.Right.Enabled)
	return tui.Run(opts)
}
