// Package document loads power regulators configuration JSON into a generic
// tree and provides a deep key scanner over it. The tree uses the shapes
// produced by encoding/json with UseNumber (map[string]any, []any, string,
// json.Number, bool, nil), which is also the representation the JSON Schema
// validator accepts, so one parse serves both the structural and the semantic
// checks.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads and parses the configuration file at path.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes raw JSON into the generic tree form. Numbers are kept as
// json.Number rather than float64 so integer identifiers survive unchanged.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after top-level JSON value")
	}
	return doc, nil
}

// GetValues collects every value stored under key anywhere in v, at any
// nesting depth, in traversal order with duplicates preserved. A matched
// value is collected but not descended into; scalars are ignored. The
// accumulator is allocated fresh on every call.
func GetValues(v any, key string) []any {
	var result []any
	collectValues(v, key, &result)
	return result
}

func collectValues(v any, key string, result *[]any) {
	switch elem := v.(type) {
	case map[string]any:
		for k, val := range elem {
			if k == key {
				*result = append(*result, val)
				continue
			}
			switch val.(type) {
			case map[string]any, []any:
				collectValues(val, key, result)
			}
		}
	case []any:
		for _, item := range elem {
			switch item.(type) {
			case map[string]any, []any:
				collectValues(item, key, result)
			}
		}
	}
}
