// Package io reads and writes tilings as JSON or YAML files.
//
// # Format
//
//	{
//	  "obstructions": [
//	    {"patt": [0, 1], "pos": [[0, 0], [0, 0]]},
//	    {"patt": [0, 1], "pos": [[0, 0], [1, 0]]}
//	  ],
//	  "requirements": [
//	    [{"patt": [0], "pos": [[1, 0]]}]
//	  ]
//	}
//
// Each gridded permutation lists its pattern and one [col, row] cell per
// point. Requirements are a list of disjunctions.
//
// # Import
//
// Use [ImportJSON] to read a tiling from a file path ("-" for standard
// input), or [ReadJSON] to read from any io.Reader. Input is normalised with
// [tiling.New], so exporting an imported file may drop redundant
// obstructions and empty rows or columns.
//
// # Export
//
// Use [ExportJSON] or [WriteJSON]; [WriteValue] writes other results, such as
// rules, with the same indentation.
//
// # YAML
//
// The same document may be written as YAML. [Import] and [Export] pick the
// format from the file extension (.yaml or .yml).
package io
