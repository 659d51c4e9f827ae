package semantic

import (
	"fmt"
	"strings"
)

// IDKind identifies the uniqueness scope a duplicate identifier was found
// in. KindGlobal is the combined rule/device/rail namespace.
type IDKind string

const (
	KindRule    IDKind = "rule"
	KindChassis IDKind = "chassis"
	KindDevice  IDKind = "device"
	KindRail    IDKind = "rail"
	KindGlobal  IDKind = "global"
)

// DuplicateIDError reports an identifier registered twice within one
// uniqueness scope.
type DuplicateIDError struct {
	Kind IDKind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	switch e.Kind {
	case KindChassis:
		return fmt.Sprintf("duplicate chassis number %s", e.ID)
	case KindGlobal:
		return fmt.Sprintf("duplicate ID %q shared between rules, devices, and rails", e.ID)
	default:
		return fmt.Sprintf("duplicate %s ID %q", e.Kind, e.ID)
	}
}

// UnresolvedReferenceError reports a reference key whose value names no
// existing entity.
type UnresolvedReferenceError struct {
	Key   string // rule_id, run_rule, device_id, or set_device
	Value string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s references nonexistent ID %q", e.Key, e.Value)
}

// InfiniteLoopError reports a cycle in the rule call graph. Path holds the
// rule IDs along the offending call chain, ending with the rule that closes
// the cycle.
type InfiniteLoopError struct {
	Path []string
}

func (e *InfiniteLoopError) Error() string {
	return fmt.Sprintf("infinite loop in rule call chain: %s", strings.Join(e.Path, " -> "))
}

// ArityMismatchError reports an i2c byte action whose masks and values
// arrays differ in length.
type ArityMismatchError struct {
	Action    string // i2c_write_bytes or i2c_compare_bytes
	MasksLen  int
	ValuesLen int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s has %d masks but %d values", e.Action, e.MasksLen, e.ValuesLen)
}
