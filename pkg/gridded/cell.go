package gridded

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/tilings/pkg/errors"
)

// Cell is a grid cell addressed by (column, row), both zero-based.
type Cell struct {
	Col int
	Row int
}

// Compare orders cells by column, then row.
func (c Cell) Compare(d Cell) int {
	if r := cmp.Compare(c.Col, d.Col); r != 0 {
		return r
	}
	return cmp.Compare(c.Row, d.Row)
}

// String renders the cell as "(col, row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// MarshalJSON encodes the cell as [col, row].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Col, c.Row})
}

// UnmarshalJSON decodes a [col, row] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "cell must have two coordinates, got %d", len(pair))
	}
	if pair[0] < 0 || pair[1] < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell coordinates must be non-negative: %v", pair)
	}
	c.Col, c.Row = pair[0], pair[1]
	return nil
}

// ParseCell parses "col,row" (surrounding parentheses optional).
func ParseCell(s string) (Cell, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	var c Cell
	if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "%d,%d", &c.Col, &c.Row); err != nil {
		return Cell{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid cell %q", s)
	}
	if c.Col < 0 || c.Row < 0 {
		return Cell{}, errors.New(errors.ErrCodeInvalidInput, "cell coordinates must be non-negative: %q", s)
	}
	return c, nil
}

// Direction names the side of a cell a placed point is extremal towards.
type Direction int

// Directions. None means no point is forced.
const (
	None  Direction = -1
	East  Direction = 0
	North Direction = 1
	West  Direction = 2
	South Direction = 3
)

var directionNames = map[Direction]string{
	None:  "none",
	East:  "east",
	North: "north",
	West:  "west",
	South: "south",
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the five defined directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Compass reports whether d is one of East, North, West or South.
func (d Direction) Compass() bool {
	return d.Valid() && d != None
}

// ParseDirection accepts a direction name or its first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "east":
		return East, nil
	case "n", "north":
		return North, nil
	case "w", "west":
		return West, nil
	case "s", "south":
		return South, nil
	case "none", "":
		return None, nil
	}
	return None, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", s)
}

func invalidDirection(d Direction) error {
	return errors.New(errors.ErrCodeInvalidDirection, "invalid direction %v", d)
}
