// Package graph builds the DTO dependency graph and performs cycle
// detection.
//
// References are extracted from field types, collection element types, dto
// back-references, and extends targets. The analyzer does not special-case
// nullability: a self-reference through a nullable field is still a cycle.
// Trees and linked structures must be modeled accordingly, or the policy
// changed deliberately at the edge-extraction step.
package graph

import (
	"sort"
	"strings"

	"dto-generator/internal/common"
	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
)

// Graph is the adjacency list: DTO name to the sorted set of DTO names it
// references. Rebuilt each generation run, never persisted.
type Graph map[string][]string

// Analyzer builds and checks dependency graphs over a schema set.
type Analyzer struct {
	// classSuffix is stripped from class-reference leaf names so a
	// "\App\ItemDto" reference resolves back to the logical name "Item".
	classSuffix string
}

// NewAnalyzer creates an analyzer. classSuffix may be empty.
func NewAnalyzer(classSuffix string) *Analyzer {
	return &Analyzer{classSuffix: classSuffix}
}

// Build constructs the adjacency list for the set.
func (a *Analyzer) Build(set *dto.SchemaSet) Graph {
	g := make(Graph, set.Len())

	for _, name := range set.Names() {
		def := set.Lookup(name)
		refs := map[string]struct{}{}

		for _, f := range def.Fields() {
			candidates := append(strings.Split(f.Type, "|"), f.SingularType, f.Dto)

			for _, candidate := range candidates {
				if target, ok := a.resolveName(set, candidate); ok {
					refs[target] = struct{}{}
				}
			}
		}

		if target, ok := a.resolveName(set, def.Extends); ok {
			refs[target] = struct{}{}
		}

		g[name] = common.SortedKeys(refs)
	}

	return g
}

// Analyze builds the graph and fails on the first cycle found, reporting the
// full path from the repeated node's first occurrence through the repetition.
func (a *Analyzer) Analyze(set *dto.SchemaSet) (Graph, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	g := a.Build(set)

	if cycle := findCycle(g); cycle != nil {
		diags.Add(diagnostic.CodeCycle, cycle[0], "",
			"dependency cycle: "+strings.Join(cycle, " -> "),
			"break the cycle by removing or restructuring one of the references")
	}

	return g, diags
}

// resolveName normalizes a raw type candidate back to a logical DTO name and
// reports whether the set knows it. Array and nullable markers are stripped,
// class references are reduced to their leaf name minus the configured
// class-name suffix.
func (a *Analyzer) resolveName(set *dto.SchemaSet, candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}

	candidate = strings.TrimSuffix(candidate, "[]")
	candidate = strings.TrimPrefix(candidate, "?")

	if strings.HasPrefix(candidate, `\`) {
		segments := strings.Split(strings.TrimPrefix(candidate, `\`), `\`)
		candidate = segments[len(segments)-1]

		if a.classSuffix != "" && strings.HasSuffix(candidate, a.classSuffix) && candidate != a.classSuffix {
			candidate = strings.TrimSuffix(candidate, a.classSuffix)
		}
	}

	if set.Has(candidate) {
		return candidate, true
	}

	return "", false
}

// findCycle runs a depth-first traversal from every node, keeping the current
// path stack and a sealed set of nodes proven cycle-free. Sealing is what
// keeps the search linear in edges on diamond-shaped acyclic graphs. The
// returned slice starts and ends at the repeated node, e.g. [A B C A].
func findCycle(g Graph) []string {
	nodes := common.SortedKeys(g)

	sealed := make(map[string]bool, len(g))
	onPath := make(map[string]bool, len(g))

	var path []string

	var visit func(n string) []string
	visit = func(n string) []string {
		if onPath[n] {
			for i, p := range path {
				if p == n {
					cycle := append([]string{}, path[i:]...)
					return append(cycle, n)
				}
			}

			return []string{n, n}
		}

		if sealed[n] {
			return nil
		}

		onPath[n] = true
		path = append(path, n)

		for _, m := range g[n] {
			if cycle := visit(m); cycle != nil {
				return cycle
			}
		}

		path = path[:len(path)-1]
		onPath[n] = false
		sealed[n] = true

		return nil
	}

	for _, n := range nodes {
		if cycle := visit(n); cycle != nil {
			return cycle
		}
	}

	return nil
}

// TopoOrder returns the nodes of an acyclic graph with dependencies first,
// ties broken by name so output is deterministic. The boolean reports whether
// a full order was produced; it is false when the graph has a cycle.
func TopoOrder(g Graph) ([]string, bool) {
	nodes := common.SortedKeys(g)

	indeg := make(map[string]int, len(nodes))
	for _, n := range nodes {
		indeg[n] = 0
	}

	// An edge n -> m means n references m, so m must come first.
	dependents := make(map[string][]string, len(nodes))

	for _, n := range nodes {
		for _, m := range g[n] {
			if _, ok := indeg[m]; !ok {
				continue
			}

			indeg[n]++
			dependents[m] = append(dependents[m], n)
		}
	}

	var ready []string

	for _, n := range nodes {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}

	sort.Strings(ready)

	order := make([]string, 0, len(nodes))

	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)

		for _, m := range dependents[n] {
			indeg[m]--
			if indeg[m] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchStrings(ready, m)
				ready = append(ready, "")
				copy(ready[k+1:], ready[k:])
				ready[k] = m
			}
		}
	}

	return order, len(order) == len(nodes)
}
