package graph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT writes g as Graphviz DOT source. Each vertex is labelled with its
// label group and weight; edges carry their weights.
func ToDOT[V any](g *Graph[V], name string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i, group := range g.labels {
		parts := make([]string, len(group))
		for j, l := range group {
			parts[j] = fmt.Sprint(l)
		}
		label := strings.Join(parts, " ")
		if g.weights[i] > 1 {
			label += fmt.Sprintf("\nweight %d", g.weights[i])
		}
		fmt.Fprintf(&buf, "  v%d [label=%q];\n", i, label)
	}

	buf.WriteString("\n")
	for i, row := range g.matrix {
		for j, w := range row {
			if w == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  v%d -> v%d [label=\"%d\"];\n", i, j, w)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG with an embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a plain
// viewBox so the image scales.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
