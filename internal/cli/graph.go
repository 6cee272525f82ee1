package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/pipeline"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format  string
		reduced bool
		prefix  string
	)
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Draw the row and column inequality graphs of a tiling",
		Long: `Graph draws the graphs separation works on. Each vertex is an active
cell; an edge u -> v means every point of u must lie below (row graph) or
left of (column graph) every point of v. With --reduced, cells that are
not related are merged first.

DOT is written to stdout unless --output is given. SVG needs --output and
writes PREFIX-rows.svg and PREFIX-cols.svg.`,
		Example: `  tilings graph tiling.json | dot -Tpng > graphs.png
  tilings graph tiling.json --format svg --reduced -o tiling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			if format == pipeline.FormatSVG && prefix == "" {
				return fmt.Errorf("--output is required for svg")
			}
			ctx := cmd.Context()
			t, err := readTiling(args[0])
			if err != nil {
				return err
			}
			graphs, err := pipeline.RenderIneqGraphs(ctx, t, format, reduced)
			if err != nil {
				return err
			}
			if prefix == "" {
				os.Stdout.Write(graphs.Row)
				os.Stdout.Write(graphs.Col)
				return nil
			}
			for name, data := range map[string][]byte{"rows": graphs.Row, "cols": graphs.Col} {
				path := fmt.Sprintf("%s-%s.%s", prefix, name, format)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "dot or svg")
	cmd.Flags().BoolVar(&reduced, "reduced", false, "merge unrelated cells before drawing")
	cmd.Flags().StringVarP(&prefix, "output", "o", "", "output file prefix")
	return cmd
}
