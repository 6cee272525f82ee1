package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tilings/pkg/algorithms/separation"
	"github.com/matzehuels/tilings/pkg/graph"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Graph output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported graph output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// IneqGraphs holds the rendered row and column inequality graphs of a
// tiling.
type IneqGraphs struct {
	Row []byte
	Col []byte
}

// RenderIneqGraphs renders the row and column inequality graphs of t in
// format. Vertices are the active cells, with reduced graphs showing the
// merged groups.
func RenderIneqGraphs(ctx context.Context, t *tiling.Tiling, format string, reduced bool) (*IneqGraphs, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	s := separation.NewSingle(t)
	row, col := s.RowIneqGraph(), s.ColIneqGraph()
	if reduced {
		row.Reduce()
		col.Reduce()
	}
	out := &IneqGraphs{}
	var err error
	if out.Row, err = render(ctx, graph.ToDOT(row, "rows"), format); err != nil {
		return nil, fmt.Errorf("render row graph: %w", err)
	}
	if out.Col, err = render(ctx, graph.ToDOT(col, "columns"), format); err != nil {
		return nil, fmt.Errorf("render column graph: %w", err)
	}
	return out, nil
}

func render(ctx context.Context, dot, format string) ([]byte, error) {
	if format == FormatSVG {
		return graph.RenderSVG(ctx, dot)
	}
	return []byte(dot), nil
}
