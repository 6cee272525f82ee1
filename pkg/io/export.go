package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tilings/pkg/tiling"
)

type document struct {
	Obstructions []json.RawMessage   `json:"obstructions"`
	Requirements [][]json.RawMessage `json:"requirements"`
}

// WriteJSON encodes t as indented JSON and writes it to w. The output can be
// read back with [ReadJSON].
func WriteJSON(t *tiling.Tiling, w io.Writer) error {
	return writeIndented(t, w)
}

// ExportJSON writes t to a JSON file at path.
func ExportJSON(t *tiling.Tiling, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

// WriteValue encodes any JSON-marshalable value, such as a rule, in the
// same layout as [WriteJSON].
func WriteValue(v any, w io.Writer) error {
	return writeIndented(v, w)
}

func writeIndented(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
