package tiling

import (
	"encoding/json"

	"github.com/matzehuels/tilings/pkg/gridded"
)

type jsonTiling struct {
	Obstructions []gridded.GriddedPerm   `json:"obstructions"`
	Requirements [][]gridded.GriddedPerm `json:"requirements"`
}

// MarshalJSON encodes t as {"obstructions": [...], "requirements": [[...]]}.
func (t *Tiling) MarshalJSON() ([]byte, error) {
	out := jsonTiling{Obstructions: t.obstructions, Requirements: t.requirements}
	if out.Requirements == nil {
		out.Requirements = [][]gridded.GriddedPerm{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tiling and normalises it with default options.
func (t *Tiling) UnmarshalJSON(data []byte) error {
	var in jsonTiling
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	u := New(in.Obstructions, in.Requirements)
	t.obstructions, t.requirements = u.obstructions, u.requirements
	t.cols, t.rows = u.cols, u.rows
	t.active, t.forward, t.opts = u.active, u.forward, u.opts
	return nil
}
