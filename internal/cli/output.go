package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tilingio "github.com/matzehuels/tilings/pkg/io"
	"github.com/matzehuels/tilings/pkg/pipeline"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Output formats for rules and tilings.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// outputFlags holds the flags shared by commands that print a result.
type outputFlags struct {
	format string
	output string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", outputText, "output format: text, json or yaml")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to a file instead of stdout")
}

func (o *outputFlags) validate() error {
	switch o.format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("invalid format: %q (must be one of: text, json, yaml)", o.format)
}

// write encodes v in the chosen format to stdout or the output file.
// text renders v with render.
func (o *outputFlags) write(v any, render func(w io.Writer) error) error {
	w := io.Writer(os.Stdout)
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.output, err)
		}
		defer f.Close()
		w = f
	}
	var err error
	switch o.format {
	case outputJSON:
		err = tilingio.WriteValue(v, w)
	case outputYAML:
		err = tilingio.WriteValueYAML(v, w)
	default:
		err = render(w)
	}
	if err == nil && o.output != "" {
		printFile(o.output)
	}
	return err
}

// readTiling loads a tiling from a JSON or YAML file, or JSON on stdin for "-".
func readTiling(path string) (*tiling.Tiling, error) {
	t, err := tilingio.Import(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// writeRule prints the outcome of a strategy.
func (o *outputFlags) writeRule(res *pipeline.Result) error {
	if !res.Applied() {
		printWarning("%s does not apply to this tiling", res.Strategy)
		return nil
	}
	return o.write(res.Rule, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderRule(res.Rule))
		return err
	})
}

// renderRule draws the formal step, the parent and every child.
func renderRule(r *rule.Rule) string {
	out := StyleTitle.Render(r.FormalStep) + "\n\n" + renderTiling(r.Parent) + "\n"
	for i, c := range r.Children {
		label := "="
		if r.Constructor != rule.ConstructorNone {
			label = fmt.Sprintf("child %d (%s)", i, r.Constructor)
		}
		out += "\n" + StyleDim.Render(label) + "\n" + renderTiling(c) + "\n"
	}
	return out
}
