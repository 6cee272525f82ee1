package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/pipeline"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// applyCommand creates the apply command.
func (c *CLI) applyCommand() *cobra.Command {
	var opts pipeline.Options
	cmd := &cobra.Command{
		Use:   "apply FILE...",
		Short: "Apply one strategy to many tilings",
		Long: `Apply runs a strategy over every file concurrently and prints a summary
table. Rules are cached, so repeated runs only compute new tilings.

Strategies: ` + strings.Join(pipeline.Strategies, ", "),
		Example: `  tilings apply --strategy factor tilings/*.json`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateStrategy(opts.Strategy); err != nil {
				return err
			}
			if opts.MaxPasses == 0 {
				opts.MaxPasses = c.Config.Separation.MaxPasses
			}
			if opts.Length == 0 {
				opts.Length = c.Config.Inferral.Length
			}
			ctx := cmd.Context()
			tilings := make([]*tiling.Tiling, len(args))
			for i, path := range args {
				t, err := readTiling(path)
				if err != nil {
					return err
				}
				tilings[i] = t
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(ctx))
			results, err := runner.ApplyAll(ctx, tilings, opts)
			if err != nil {
				return err
			}
			prog.done("Applied strategy", "strategy", opts.Strategy, "tilings", len(results))
			fmt.Fprintln(os.Stdout, summaryTable(args, results))
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", pipeline.StrategyFactor, "strategy to apply")
	cmd.Flags().IntVar(&opts.MaxPasses, "max-passes", 0, "separation passes before giving up (default from config)")
	cmd.Flags().IntVar(&opts.Length, "length", 0, "candidate length for infer-all (default from config)")
	cmd.Flags().BoolVar(&opts.Workable, "workable", false, "mark factors for further expansion")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute instead of reading the cache")
	_ = cmd.RegisterFlagCompletionFunc("strategy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Strategies, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// summaryTable lists one row per input file.
func summaryTable(paths []string, results []*pipeline.Result) string {
	rows := make([][]string, len(results))
	for i, res := range results {
		outcome := "not applicable"
		if res.Applied() {
			outcome = fmt.Sprintf("%d %s", res.Children(), plural(res.Children(), "child", "children"))
		}
		source := iconFresh
		if res.Cached {
			source = iconCached
		}
		rows[i] = []string{paths[i], outcome, source, res.RunID[:8]}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("File", "Result", "Source", "Run").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(results) {
				return base
			}
			switch {
			case col == 2 && results[row].Cached:
				return base.Inherit(styleCached)
			case col == 1 && results[row].Applied():
				return base.Foreground(colorGreen)
			case col == 1, col == 3:
				return base.Foreground(colorDim)
			}
			return base
		}).
		Render()
}
