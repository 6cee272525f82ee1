package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/gridded"
)

// Placement operations.
const (
	placePlace    = "place"
	placeInsert   = "insert"
	placeSeparate = "separate"
)

// placeCommand creates the place command.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		op            string
		cellArg       string
		dirArg        string
		skipRedundant bool
		out           outputFlags
	)
	cmd := &cobra.Command{
		Use:   "place PATTERN CELL...",
		Short: "Place a point in one cell of a gridded permutation",
		Long: `Place works on a single gridded permutation, given as its pattern and one
cell per point.

  place     force the extreme point of --cell in --dir and list the results
  insert    insert a new point into --cell in every possible position
  separate  split the row or column of --cell around the placed point`,
		Example: `  tilings place 021 "(0,0)" "(0,0)" "(1,0)" --cell 0,0 --dir north
  tilings place 01 0,0 1,1 --cell 1,1 --op insert`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			g, err := parseGriddedPerm(args[0], args[1:])
			if err != nil {
				return err
			}
			cell, err := gridded.ParseCell(cellArg)
			if err != nil {
				return err
			}
			dir, err := gridded.ParseDirection(dirArg)
			if err != nil {
				return err
			}

			var res []gridded.GriddedPerm
			switch op {
			case placePlace:
				res, err = g.PlacePoint(cell, dir, skipRedundant)
			case placeInsert:
				res = slices.Collect(g.InsertPoint(cell))
			case placeSeparate:
				res, err = g.PointSeparation(cell, dir)
			default:
				return fmt.Errorf("invalid op: %q (must be one of: place, insert, separate)", op)
			}
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("placed point", "op", op, "input", g, "results", len(res))
			return out.write(res, func(w io.Writer) error {
				fmt.Fprintln(w, StyleTitle.Render(g.String()))
				for _, r := range res {
					if _, err := fmt.Fprintln(w, "  "+r.String()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&op, "op", placePlace, "place, insert or separate")
	cmd.Flags().StringVar(&cellArg, "cell", "0,0", "cell to place the point in")
	cmd.Flags().StringVar(&dirArg, "dir", "north", "direction: north, south, east, west or none")
	cmd.Flags().BoolVar(&skipRedundant, "skip-redundant", false, "omit results containing the forced one")
	out.register(cmd)
	return cmd
}

// parseGriddedPerm parses a pattern written as digits ("021") or
// comma-separated values ("0,2,1") and one cell per point.
func parseGriddedPerm(pattern string, cells []string) (gridded.GriddedPerm, error) {
	patt, err := parsePattern(pattern)
	if err != nil {
		return gridded.GriddedPerm{}, err
	}
	pos := make([]gridded.Cell, len(cells))
	for i, s := range cells {
		if pos[i], err = gridded.ParseCell(s); err != nil {
			return gridded.GriddedPerm{}, err
		}
	}
	return gridded.New(patt, pos)
}

func parsePattern(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	var parts []string
	if strings.Contains(s, ",") {
		parts = strings.Split(s, ",")
	} else {
		parts = strings.Split(s, "")
	}
	patt := make([]int, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		patt = append(patt, v)
	}
	return patt, nil
}
