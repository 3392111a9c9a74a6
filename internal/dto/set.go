package dto

import "sort"

// SchemaSet is the full collection of definitions known to one generation
// run. Cross-references between DTOs are stored as name strings and resolved
// by lookup, never as direct pointers.
type SchemaSet struct {
	dtos  map[string]*Definition
	order []string
}

// NewSchemaSet creates an empty set.
func NewSchemaSet() *SchemaSet {
	return &SchemaSet{dtos: make(map[string]*Definition)}
}

// Add inserts or replaces a definition.
func (s *SchemaSet) Add(def *Definition) {
	if _, ok := s.dtos[def.Name]; !ok {
		s.order = append(s.order, def.Name)
	}

	s.dtos[def.Name] = def
}

// Lookup returns the named definition, or nil.
func (s *SchemaSet) Lookup(name string) *Definition {
	return s.dtos[name]
}

// Has reports whether the named definition exists.
func (s *SchemaSet) Has(name string) bool {
	_, ok := s.dtos[name]
	return ok
}

// Len returns the number of definitions.
func (s *SchemaSet) Len() int {
	return len(s.dtos)
}

// Names returns all DTO names in ascending order.
func (s *SchemaSet) Names() []string {
	names := make([]string, 0, len(s.dtos))
	for name := range s.dtos {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// InOrder returns definitions in the set's current order. The builder
// reorders the set topologically (dependencies first) before emission.
func (s *SchemaSet) InOrder() []*Definition {
	defs := make([]*Definition, 0, len(s.order))
	for _, name := range s.order {
		defs = append(defs, s.dtos[name])
	}

	return defs
}

// Reorder replaces the set order. Names absent from the set are ignored;
// names absent from the argument keep their relative position at the end.
func (s *SchemaSet) Reorder(names []string) {
	seen := make(map[string]bool, len(names))
	order := make([]string, 0, len(s.order))

	for _, name := range names {
		if _, ok := s.dtos[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}

	for _, name := range s.order {
		if !seen[name] {
			order = append(order, name)
		}
	}

	s.order = order
}
