package gridded

import (
	"encoding/json"

	"github.com/matzehuels/tilings/pkg/perm"
)

type jsonGriddedPerm struct {
	Patt []int  `json:"patt"`
	Pos  []Cell `json:"pos"`
}

// MarshalJSON encodes g as {"patt": [...], "pos": [[col, row], ...]}.
func (g GriddedPerm) MarshalJSON() ([]byte, error) {
	out := jsonGriddedPerm{Patt: g.patt, Pos: g.pos}
	if out.Patt == nil {
		out.Patt = perm.Perm{}
	}
	if out.Pos == nil {
		out.Pos = []Cell{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates a gridded permutation.
func (g *GriddedPerm) UnmarshalJSON(data []byte) error {
	var in jsonGriddedPerm
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	parsed, err := New(in.Patt, in.Pos)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
