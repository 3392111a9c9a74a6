package typing

import (
	"strings"
)

// Resolver computes language-level type information from classified type
// strings: emitted type hints, singular element types, collection types, enum
// backing kinds, and auto-serialization strategies for class references.
type Resolver struct {
	classifier *Classifier
}

// NewResolver creates a resolver on top of the given classifier.
func NewResolver(classifier *Classifier) *Resolver {
	return &Resolver{classifier: classifier}
}

// TypeHint maps a classified type to the emitted type annotation, or "" when
// no hint applies.
//
// Union types whose members are all plain (non-array) pass through unchanged.
// A union containing any array-suffixed member collapses to the generic
// "array" annotation: the target cannot express "(int[]|string)" natively.
// This is a deliberate precision loss; the full union is preserved in the
// documentation-only annotation computed by the field completor.
func (r *Resolver) TypeHint(typ string) string {
	if typ == "" {
		return ""
	}

	members := splitUnion(typ)
	if len(members) > 1 {
		for _, m := range members {
			if strings.HasSuffix(strings.TrimPrefix(m, "?"), "[]") {
				return "array"
			}
		}

		return typ
	}

	switch r.classifier.Classify(typ) {
	case KindArray:
		return "array"
	case KindScalar, KindDtoReference, KindClassReference:
		return strings.TrimPrefix(typ, "?")
	default:
		return ""
	}
}

// SingularType strips exactly one trailing "[]" and an optional leading "?"
// from an array-shaped type. It returns "" when typ is not array-shaped or
// the stripped element type is not itself a scalar, DTO name, or class
// reference.
func (r *Resolver) SingularType(typ string) string {
	if !strings.HasSuffix(typ, "[]") {
		return ""
	}

	elem := strings.TrimSuffix(typ, "[]")
	elem = strings.TrimPrefix(elem, "?")

	if elem == "" || strings.Contains(elem, "|") || strings.HasSuffix(elem, "[]") {
		return ""
	}

	if r.classifier.isScalarWord(elem, nil) || IsValidDtoName(elem) || r.classifier.IsClassReference(elem) {
		return elem
	}

	return ""
}

// CollectionType picks the concrete collection implementation type:
// the explicit configuration wins, then the run default for collection
// fields, then the literal "array".
func (r *Resolver) CollectionType(explicit string, collection bool, defaultType string) string {
	if explicit != "" {
		return explicit
	}

	if collection && defaultType != "" {
		return defaultType
	}

	return "array"
}

// EnumBackingKind inspects a class reference and returns "" when it is not an
// enum, "unit" when it has no backing scalar, or the backing type name.
func (r *Resolver) EnumBackingKind(classRef string) string {
	info, ok := r.classifier.Registry().Lookup(classRef)
	if !ok || !info.Enum {
		return ""
	}

	if info.EnumBacking == "" {
		return EnumBackingUnit
	}

	return info.EnumBacking
}

// DetectAutoSerialize picks the serialization strategy for a class reference.
//
// Priority order: a full round-trip capability wins over JSON-safe
// passthrough, which wins over a one-directional toArray method. The ordering
// matters when a class offers several capabilities at once.
func (r *Resolver) DetectAutoSerialize(classRef string) string {
	info, ok := r.classifier.Registry().Lookup(classRef)
	if !ok {
		return ""
	}

	switch {
	case info.RoundTrip:
		return SerializeFromArrayToArray
	case info.JSONSafe:
		return ""
	case info.HasToArray:
		return SerializeArray
	default:
		return ""
	}
}
