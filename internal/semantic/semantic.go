// Package semantic implements the checks on power regulators configuration
// documents that the JSON schema cannot express: identifier uniqueness,
// rule call-graph cycle detection, reference resolution, and i2c byte-array
// arity. The document is read-only input; every check allocates its own
// registries and path stacks, so concurrent validation of separate documents
// is safe.
package semantic

// Validate runs every semantic check over doc in a fixed order and returns
// the first violation found: uniqueness, then call-graph cycles, then
// reference resolution, then byte-array arity. The document is expected to
// have already passed structural schema validation; entries with unexpected
// shapes are skipped rather than reported here.
func Validate(doc any) error {
	if err := checkDuplicateIDs(doc); err != nil {
		return err
	}
	if err := newCallGraph(doc).detectCycles(); err != nil {
		return err
	}
	if err := checkReferences(doc); err != nil {
		return err
	}
	return checkByteArrays(doc)
}

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// topArray returns the named top-level array of the document, or nil when
// absent or of the wrong shape.
func topArray(doc any, key string) []any {
	obj, ok := asObject(doc)
	if !ok {
		return nil
	}
	arr, _ := asArray(obj[key])
	return arr
}

func childArray(obj map[string]any, key string) []any {
	arr, _ := asArray(obj[key])
	return arr
}
