package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/reveal/internal/reveal"
	"github.com/papapumpkin/reveal/internal/ui"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print front pane offsets for the current configuration",
	Long: `Locate prints the resolved geometry of both panes and the offset the
front pane rests at in every position. With --drag it classifies a single
raw drag offset instead and shows where a release with --velocity settles.`,
	Args: cobra.NoArgs,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().Float64("drag", 0, "classify this raw drag offset")
	locateCmd.Flags().Float64("velocity", 0, "release velocity used with --drag")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := reveal.New(cfg.Geometry(), cfg.Options()...)
	printer.Geometry(r)

	if !cmd.Flags().Changed("drag") {
		printer.Locations(r)
		return nil
	}

	x, _ := cmd.Flags().GetFloat64("drag")
	velocity, _ := cmd.Flags().GetFloat64("velocity")
	res := r.DragTo(x)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "drag %.1f -> offset %.1f, %s", x, res.Offset, res.Position)
	if res.Overdrawn {
		fmt.Fprint(out, " (overdrawn)")
	}
	fmt.Fprintln(out)
	rel := r.EndDrag(velocity)
	fmt.Fprintf(out, "release at %.1f/s -> %s, target %.1f, bounce %v\n", velocity, rel.Position, rel.Target, rel.BounceBack)
	return nil
}
