package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/pipeline"
	"github.com/matzehuels/tilings/pkg/tiling"
)

type separateOpts struct {
	once      bool
	all       bool
	onlyMax   bool
	maxPasses int
	refresh   bool
	out       outputFlags
}

// separateCommand creates the separate command.
func (c *CLI) separateCommand() *cobra.Command {
	var opts separateOpts
	cmd := &cobra.Command{
		Use:   "separate FILE",
		Short: "Separate the rows and columns of a tiling",
		Long: `Separate splits rows and columns whose cells are forced into a fixed
vertical or horizontal order by the length-2 obstructions between them.

By default the separation is repeated until nothing changes. With --once a
single pass is applied; with --all every distinct single separation is
listed.`,
		Example: `  tilings separate tiling.json
  tilings separate tiling.yaml --once -f yaml
  tilings separate tiling.json --all --only-max=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.out.validate(); err != nil {
				return err
			}
			if opts.maxPasses == 0 {
				opts.maxPasses = c.Config.Separation.MaxPasses
			}
			return c.runSeparate(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.once, "once", false, "apply a single separation pass")
	cmd.Flags().BoolVar(&opts.all, "all", false, "list every distinct single separation")
	cmd.Flags().BoolVar(&opts.onlyMax, "only-max", true, "with --all, only use the finest row and column orders")
	cmd.Flags().IntVar(&opts.maxPasses, "max-passes", 0, "passes before giving up (default from config)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute instead of reading the cache")
	opts.out.register(cmd)
	return cmd
}

func (c *CLI) runSeparate(cmd *cobra.Command, path string, opts separateOpts) error {
	ctx := cmd.Context()
	t, err := readTiling(path)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.all {
		prog := newProgress(loggerFromContext(ctx))
		tilings, cached, err := runner.Separations(ctx, t, opts.onlyMax, opts.refresh)
		if err != nil {
			return err
		}
		prog.done("Enumerated separations", "count", len(tilings))
		printSuccess("%d distinct %s", len(tilings), plural(len(tilings), "separation", "separations"))
		printStats(len(tilings), 0, cached)
		if err := opts.out.write(tilings, func(w io.Writer) error { return writeTilings(w, tilings) }); err != nil {
			return err
		}
		printNextStep("Page through them", fmt.Sprintf("tilings browse %s --separations", path))
		return nil
	}

	strategy := pipeline.StrategySeparate
	if opts.once {
		strategy = pipeline.StrategySeparateOnce
	}
	spinner := newSpinnerWithContext(ctx, "Separating...")
	spinner.Start()
	res, err := runner.Apply(ctx, t, pipeline.Options{
		Strategy:  strategy,
		MaxPasses: opts.maxPasses,
		Refresh:   opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	if res.Applied() {
		printSuccess("Separated into a %s grid", dims(res.Rule.Children[0]))
		printStats(res.Children(), 0, res.Cached)
	}
	return opts.out.writeRule(res)
}

func writeTilings(w io.Writer, tilings []*tiling.Tiling) error {
	for i, t := range tilings {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", StyleDim.Render(fmt.Sprintf("separation %d", i)), renderTiling(t)); err != nil {
			return err
		}
	}
	return nil
}

func dims(t *tiling.Tiling) string {
	cols, rows := t.Dimensions()
	return fmt.Sprintf("%d×%d", cols, rows)
}
