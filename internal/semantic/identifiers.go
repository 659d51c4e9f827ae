package semantic

import "encoding/json"

// The identifier checks walk the document's explicit structure (rules,
// chassis -> devices -> rails) rather than the deep scanner, because the
// scopes are positional: device IDs are declared per chassis but must be
// unique across all chassis, and likewise for rails across all devices.

// ruleIDs returns the id of every rule in declaration order.
func ruleIDs(doc any) []string {
	var ids []string
	for _, r := range topArray(doc, "rules") {
		rule, ok := asObject(r)
		if !ok {
			continue
		}
		if id, ok := asString(rule["id"]); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// chassisNumbers returns every chassis number in declaration order, in its
// literal form. The schema constrains numbers to integers, so distinct
// literals are distinct numbers.
func chassisNumbers(doc any) []string {
	var nums []string
	for _, c := range topArray(doc, "chassis") {
		chassis, ok := asObject(c)
		if !ok {
			continue
		}
		if n, ok := chassis["number"].(json.Number); ok {
			nums = append(nums, n.String())
		}
	}
	return nums
}

// deviceIDs returns every device ID across all chassis in document order.
func deviceIDs(doc any) []string {
	var ids []string
	for _, c := range topArray(doc, "chassis") {
		chassis, ok := asObject(c)
		if !ok {
			continue
		}
		for _, d := range childArray(chassis, "devices") {
			device, ok := asObject(d)
			if !ok {
				continue
			}
			if id, ok := asString(device["id"]); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// railIDs returns every rail ID across all devices and chassis in document
// order.
func railIDs(doc any) []string {
	var ids []string
	for _, c := range topArray(doc, "chassis") {
		chassis, ok := asObject(c)
		if !ok {
			continue
		}
		for _, d := range childArray(chassis, "devices") {
			device, ok := asObject(d)
			if !ok {
				continue
			}
			for _, r := range childArray(device, "rails") {
				rail, ok := asObject(r)
				if !ok {
					continue
				}
				if id, ok := asString(rail["id"]); ok {
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}

// checkUnique registers ids one by one and fails on the first repeat.
func checkUnique(kind IDKind, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return &DuplicateIDError{Kind: kind, ID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// checkDuplicateIDs runs the four scoped uniqueness passes, then the global
// pass over the combined rule/device/rail namespace. Chassis numbers are a
// separate namespace and do not take part in the global pass.
func checkDuplicateIDs(doc any) error {
	rules := ruleIDs(doc)
	devices := deviceIDs(doc)
	rails := railIDs(doc)

	if err := checkUnique(KindRule, rules); err != nil {
		return err
	}
	if err := checkUnique(KindChassis, chassisNumbers(doc)); err != nil {
		return err
	}
	if err := checkUnique(KindDevice, devices); err != nil {
		return err
	}
	if err := checkUnique(KindRail, rails); err != nil {
		return err
	}

	all := make([]string, 0, len(rules)+len(devices)+len(rails))
	all = append(all, rules...)
	all = append(all, devices...)
	all = append(all, rails...)
	return checkUnique(KindGlobal, all)
}
