package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/algorithms/factor"
	"github.com/matzehuels/tilings/pkg/pipeline"
)

// factorCommand creates the factor command.
func (c *CLI) factorCommand() *cobra.Command {
	var (
		mode     string
		workable bool
		refresh  bool
		out      outputFlags
	)
	cmd := &cobra.Command{
		Use:   "factor FILE",
		Short: "Split a tiling into independent factors",
		Long: `Factor groups the active cells of a tiling into components that share no
obstruction, requirement list, row or column, and returns one tiling per
component.

--mode relaxes the row and column condition: factor-monotone lets monotone
cells interleave with their neighbours, factor-interleaving lets every cell
interleave.`,
		Example: `  tilings factor tiling.json
  tilings factor tiling.json --mode factor-interleaving --workable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			if _, err := factor.ParseMode(mode); err != nil {
				return err
			}
			ctx := cmd.Context()
			t, err := readTiling(args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Apply(ctx, t, pipeline.Options{Strategy: mode, Workable: workable, Refresh: refresh})
			if err != nil {
				return err
			}
			if res.Applied() {
				printSuccess("Found %d factors", res.Children())
				printStats(res.Children(), 0, res.Cached)
			}
			return out.writeRule(res)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", factor.ModeNone.String(),
		"factor, factor-monotone or factor-interleaving")
	cmd.Flags().BoolVar(&workable, "workable", false, "mark the factors for further expansion")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute instead of reading the cache")
	out.register(cmd)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{
			factor.ModeNone.String(),
			factor.ModeMonotoneInterleaving.String(),
			factor.ModeInterleaving.String(),
		}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
