package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nestmap/convert"
	"nestmap/deep"
)

// loadDocument reads a JSON or YAML file into a Container. The format
// follows the file extension; anything other than a top-level object
// is rejected.
func loadDocument(path string) (deep.Container, error) {
	raw, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a top-level object, got %T", path, raw)
	}

	return convert.FromStringMap(m), nil
}

// loadRecords reads a JSON or YAML file holding an array of objects.
func loadRecords(path string) ([]deep.Container, error) {
	raw, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a top-level array of objects, got %T", path, raw)
	}

	records := make([]deep.Container, 0, len(seq))

	for i, item := range seq {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: record %d is not an object (%T)", path, i, item)
		}

		records = append(records, convert.FromStringMap(m))
	}

	return records, nil
}

func decodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%s: unsupported extension %q (want .json, .yaml, or .yml)", path, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return raw, nil
}

// writeDocument prints a Container as YAML, or JSON with --json.
func writeDocument(w io.Writer, c deep.Container) error {
	m, err := convert.ToStringMap(c)
	if err != nil {
		return err
	}

	return writeValue(w, m)
}

func writeValue(w io.Writer, v any) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
