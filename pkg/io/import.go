package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// ReadJSON decodes a tiling from r.
//
// The input must be a JSON object with "obstructions" and "requirements":
//
//	{
//	  "obstructions": [{"patt": [0, 1], "pos": [[0, 0], [0, 0]]}],
//	  "requirements": [[{"patt": [0], "pos": [[0, 0]]}]]
//	}
//
// "requirements" may be omitted. ReadJSON returns an error if:
//   - The JSON is malformed
//   - A pattern is not a permutation (INVALID_PATTERN)
//   - A pattern and its positions differ in length (LENGTH_MISMATCH)
//   - A cell has a negative coordinate
//
// Errors name the offending obstruction or requirement. The result is
// normalised by [tiling.New] with default options. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tiling.Tiling, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Obstructions == nil {
		return nil, errors.New(errors.ErrCodeInvalidTiling, "missing \"obstructions\"")
	}

	obs := make([]gridded.GriddedPerm, len(data.Obstructions))
	for i, raw := range data.Obstructions {
		if err := json.Unmarshal(raw, &obs[i]); err != nil {
			return nil, fmt.Errorf("obstruction %d: %w", i, err)
		}
	}
	reqs := make([][]gridded.GriddedPerm, len(data.Requirements))
	for i, list := range data.Requirements {
		reqs[i] = make([]gridded.GriddedPerm, len(list))
		for j, raw := range list {
			if err := json.Unmarshal(raw, &reqs[i][j]); err != nil {
				return nil, fmt.Errorf("requirement %d.%d: %w", i, j, err)
			}
		}
	}
	return tiling.New(obs, reqs), nil
}

// ImportJSON reads a tiling from the JSON file at path. A path of "-" reads
// standard input.
func ImportJSON(path string) (*tiling.Tiling, error) {
	if path == "-" {
		return ReadJSON(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
