package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// ReadYAML decodes a tiling written in the YAML form of the JSON format.
// Validation matches [ReadJSON].
func ReadYAML(r io.Reader) (*tiling.Tiling, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ReadJSON(bytes.NewReader(js))
}

// WriteYAML encodes t as YAML.
func WriteYAML(t *tiling.Tiling, w io.Writer) error {
	return WriteValueYAML(t, w)
}

// WriteValueYAML encodes any JSON-marshalable value as YAML.
func WriteValueYAML(v any, w io.Writer) error {
	js, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	out, err := yaml.JSONToYAML(js)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// IsYAML reports whether path has a .yaml or .yml extension.
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Import reads a tiling from path, choosing YAML or JSON by extension.
// A path of "-" reads JSON from standard input.
func Import(path string) (*tiling.Tiling, error) {
	if !IsYAML(path) {
		return ImportJSON(path)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadYAML(f)
}

// Export writes t to path, choosing YAML or JSON by extension.
func Export(t *tiling.Tiling, path string) error {
	if !IsYAML(path) {
		return ExportJSON(t, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteYAML(t, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
