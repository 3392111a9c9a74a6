// Package extends resolves the extends attribute of every DTO to either a
// sibling DTO in the schema set or an external registry class, and enforces
// the mutability invariant: immutable DTOs only extend immutable bases, and
// mutable DTOs only extend mutable bases, transitively.
package extends

import (
	"fmt"
	"strings"

	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
	"dto-generator/internal/typing"
)

// Resolver resolves inheritance for a whole schema set.
type Resolver struct {
	registry *typing.ClassRegistry
}

// NewResolver creates a resolver against the given class registry.
func NewResolver(registry *typing.ClassRegistry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve processes every definition with an extends target. Violations are
// fatal configuration errors raised before any code is emitted.
func (r *Resolver) Resolve(set *dto.SchemaSet) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, name := range set.Names() {
		def := set.Lookup(name)

		r.resolveOne(set, def, diags)
		r.checkTraits(def, diags)
	}

	return diags
}

// checkTraits requires every mixin reference to name a registered class.
func (r *Resolver) checkTraits(def *dto.Definition, diags *diagnostic.Diagnostics) {
	for _, trait := range def.Traits {
		if !r.registry.Exists(trait) {
			diags.Add(diagnostic.CodeInheritance, def.Name, "",
				fmt.Sprintf("trait %q is not a known class", trait),
				"register the trait in the classes section of the generator config")
		}
	}
}

func (r *Resolver) resolveOne(set *dto.SchemaSet, def *dto.Definition, diags *diagnostic.Diagnostics) {
	if def.Extends == "" {
		return
	}

	target := def.Extends

	if parent := set.Lookup(target); parent != nil {
		def.ExtendsDto = target

		r.checkMutability(def, target, parent.Immutable, diags)

		return
	}

	if !strings.HasPrefix(target, `\`) && !r.registry.Exists(target) {
		diags.Add(diagnostic.CodeInheritance, def.Name, "",
			fmt.Sprintf("extends target %q is not a known dto", target),
			"declare the target dto, or reference an external class with a leading backslash")

		return
	}

	info, ok := r.registry.Lookup(target)
	if !ok {
		diags.Add(diagnostic.CodeInheritance, def.Name, "",
			fmt.Sprintf("extends target %q is not a known class", target),
			"register the class in the classes section of the generator config")

		return
	}

	if !info.Extendable {
		diags.Add(diagnostic.CodeInheritance, def.Name, "",
			fmt.Sprintf("class %q has no inheritable shape", target),
			"extend a non-final class")

		return
	}

	def.ExtendsClass = info.Name

	r.checkMutability(def, target, info.Immutable, diags)
}

// checkMutability enforces the invariant in both directions. Transitivity
// follows because every link of an extends chain is checked against its own
// parent.
func (r *Resolver) checkMutability(def *dto.Definition, target string, parentImmutable bool, diags *diagnostic.Diagnostics) {
	if def.Immutable == parentImmutable {
		return
	}

	if def.Immutable {
		diags.Add(diagnostic.CodeInheritance, def.Name, "",
			fmt.Sprintf("immutable dto extends mutable base %q", target),
			"make the base immutable, or drop immutable from this dto")

		return
	}

	diags.Add(diagnostic.CodeInheritance, def.Name, "",
		fmt.Sprintf("mutable dto extends immutable base %q", target),
		"mark this dto immutable, or extend a mutable base")
}
