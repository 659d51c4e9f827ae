package semantic

import "github.com/openbmc-tools/regval/internal/document"

// checkReferences verifies that every symbolic reference in the document
// names an existing entity. References may sit at any nesting depth inside
// an action, so each key is located with the deep scanner rather than a
// structural walk.
func checkReferences(doc any) error {
	rules := stringSet(ruleIDs(doc))
	devices := stringSet(deviceIDs(doc))

	checks := []struct {
		key string
		ids map[string]struct{}
	}{
		{"run_rule", rules},
		{"set_device", devices},
		{"rule_id", rules},
		{"device_id", devices},
	}

	for _, c := range checks {
		for _, v := range document.GetValues(doc, c.key) {
			value, ok := asString(v)
			if !ok {
				continue
			}
			if _, exists := c.ids[value]; !exists {
				return &UnresolvedReferenceError{Key: c.key, Value: value}
			}
		}
	}
	return nil
}

func stringSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
