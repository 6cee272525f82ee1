package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/pipeline"
)

var inferKinds = map[string]string{
	"subobstruction": pipeline.StrategyInferSubobstruction,
	"all":            pipeline.StrategyInferAll,
	"empty-cells":    pipeline.StrategyInferEmptyCells,
}

// inferCommand creates the infer command.
func (c *CLI) inferCommand() *cobra.Command {
	var (
		kind    string
		length  int
		refresh bool
		out     outputFlags
	)
	cmd := &cobra.Command{
		Use:   "infer FILE",
		Short: "Add obstructions implied by the tiling",
		Long: `Infer adds every candidate obstruction that no gridded permutation on the
tiling can contain.

  subobstruction  candidates are the subpatterns of existing obstructions
  all             candidates are all gridded permutations up to --length
  empty-cells     candidates are single points, so the result marks cells empty`,
		Example: `  tilings infer tiling.json
  tilings infer tiling.json --kind all --length 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			strategy, ok := inferKinds[kind]
			if !ok {
				return fmt.Errorf("invalid kind: %q (must be one of: subobstruction, all, empty-cells)", kind)
			}
			if length == 0 {
				length = c.Config.Inferral.Length
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

			spinner := newSpinnerWithContext(ctx, "Inferring obstructions...")
			spinner.Start()
			res, err := runner.Apply(ctx, t, pipeline.Options{Strategy: strategy, Length: length, Refresh: refresh})
			spinner.Stop()
			if err != nil {
				return err
			}
			if res.Applied() {
				printSuccess("%s", res.Rule.FormalStep)
				printStats(res.Children(), 0, res.Cached)
			}
			return out.writeRule(res)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "subobstruction", "subobstruction, all or empty-cells")
	cmd.Flags().IntVar(&length, "length", 0, "maximum candidate length for --kind all (default from config)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute instead of reading the cache")
	out.register(cmd)
	return cmd
}
