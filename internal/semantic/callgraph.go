package semantic

import "slices"

// callGraph is the implicit directed graph over rules: one node per rule ID,
// one edge per run_rule action at the rule's top level. Edges are discovered
// only among a rule's direct action entries; a run_rule nested inside a
// compound action contributes no edge (the reference resolver still checks
// that its target exists).
type callGraph struct {
	order   []string
	nodes   map[string]struct{}
	targets map[string][]string
}

func newCallGraph(doc any) *callGraph {
	g := &callGraph{
		nodes:   make(map[string]struct{}),
		targets: make(map[string][]string),
	}
	for _, r := range topArray(doc, "rules") {
		rule, ok := asObject(r)
		if !ok {
			continue
		}
		id, ok := asString(rule["id"])
		if !ok {
			continue
		}
		g.order = append(g.order, id)
		g.nodes[id] = struct{}{}
		for _, a := range childArray(rule, "actions") {
			action, ok := asObject(a)
			if !ok {
				continue
			}
			if target, ok := asString(action["run_rule"]); ok {
				g.targets[id] = append(g.targets[id], target)
			}
		}
	}
	return g
}

// detectCycles traverses the call graph from every rule in declaration order
// and fails fast on the first cycle found. Each traversal carries its own
// path stack, so a rule reachable through two disjoint chains (a diamond) is
// revisited rather than cached; only re-entry on the current chain is a
// cycle.
func (g *callGraph) detectCycles() error {
	for _, id := range g.order {
		if err := g.walk(id, nil); err != nil {
			return err
		}
	}
	return nil
}

func (g *callGraph) walk(id string, stack []string) error {
	stack = append(stack, id)
	for _, target := range g.targets[id] {
		if slices.Contains(stack, target) {
			return &InfiniteLoopError{Path: append(slices.Clone(stack), target)}
		}
		if _, exists := g.nodes[target]; !exists {
			// Nonexistent target: no edge to follow. The reference
			// resolver reports it.
			continue
		}
		if err := g.walk(target, stack); err != nil {
			return err
		}
	}
	return nil
}
