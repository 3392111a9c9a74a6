// Package complete implements the field-completion pipeline: it takes a
// validated DTO definition with raw declared fields and fills in defaults,
// resolved types, type-hint variants, collection configuration, and singular
// names, advancing every field through its phases in strict order.
package complete

import (
	"fmt"
	"strings"

	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
	"dto-generator/internal/inflect"
	"dto-generator/internal/typing"
)

// Config holds completion configuration. It is explicit constructor input;
// there are no process-wide defaults to override.
type Config struct {
	// DefaultCollectionType is used for collection fields without an explicit
	// collectionType.
	DefaultCollectionType string
	// DefaultKeyType is used for associative collections without an explicit
	// key type.
	DefaultKeyType string
}

// DefaultConfig returns the default completion configuration.
func DefaultConfig() Config {
	return Config{
		DefaultCollectionType: "array",
		DefaultKeyType:        "string",
	}
}

// Completor completes one DTO definition's fields.
type Completor struct {
	classifier *typing.Classifier
	resolver   *typing.Resolver
	config     Config
}

// NewCompletor creates a completor.
func NewCompletor(classifier *typing.Classifier, resolver *typing.Resolver, config Config) *Completor {
	return &Completor{classifier: classifier, resolver: resolver, config: config}
}

// Complete runs every field of def through the full phase sequence:
// RawDeclared -> DefaultsApplied -> TypeResolved -> TypeHintsCompleted ->
// CollectionCompleted -> ArrayCompleted -> NullableCompleted ->
// SingularCompleted -> Frozen. No phase ever branches back.
func (c *Completor) Complete(def *dto.Definition) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, f := range def.Fields() {
		c.applyDefaults(f)
		c.resolveType(def, f, diags)
		c.completeTypeHints(f)
		c.completeCollection(def, f, diags)
		c.completeArray(f)
		c.completeNullable(f)
		c.completeSingular(def, f, diags)

		f.Phase = dto.PhaseFrozen
	}

	return diags
}

// applyDefaults fills in defaults. Nullability is the logical negation of
// required; no separate config key exists for it.
func (c *Completor) applyDefaults(f *dto.FieldDefinition) {
	f.Nullable = !f.Required
	f.Accessor = inflect.AccessorName(f.Name)
	f.Phase = dto.PhaseDefaultsApplied
}

func (c *Completor) resolveType(def *dto.Definition, f *dto.FieldDefinition, diags *diagnostic.Diagnostics) {
	defer func() { f.Phase = dto.PhaseTypeResolved }()

	if f.Type == "" {
		diags.Add(diagnostic.CodeTypeInvalid, def.Name, f.Name,
			"field has no type", "declare a type string, e.g. \"string\" or \"Item[]\"")

		return
	}

	// A leading "?" on a non-array type marks the field itself nullable.
	// On an array type it marks the element, handled in the array phase.
	if strings.HasPrefix(f.Type, "?") && !strings.HasSuffix(f.Type, "[]") {
		f.Nullable = true
	}

	base := strings.TrimPrefix(f.Type, "?")

	switch c.classifier.Classify(f.Type) {
	case typing.KindClassReference:
		f.IsClass = true

		if backing := c.resolver.EnumBackingKind(base); backing != "" {
			f.Enum = true
			f.EnumBacking = backing
		}

		f.Serialize = c.resolver.DetectAutoSerialize(base)
	case typing.KindDtoReference:
		f.Dto = base
	case typing.KindScalar, typing.KindArray, typing.KindUnion:
		// handled by the hint/collection/array phases
	default:
		diags.Add(diagnostic.CodeTypeInvalid, def.Name, f.Name,
			fmt.Sprintf("type %q is not classifiable", f.Type),
			"use a scalar, a PascalCase DTO name, a \\-prefixed known class, \"T[]\", or a union of those")
	}
}

func (c *Completor) completeTypeHints(f *dto.FieldDefinition) {
	f.TypeHint = c.resolver.TypeHint(f.Type)
	f.Phase = dto.PhaseTypeHintsCompleted
}

func (c *Completor) completeCollection(def *dto.Definition, f *dto.FieldDefinition, diags *diagnostic.Diagnostics) {
	defer func() { f.Phase = dto.PhaseCollectionCompleted }()

	if !f.Collection {
		if f.Singular != "" && !c.classifier.IsArrayType(f.Type) {
			diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
				fmt.Sprintf("singular name set on non-collection type %q", f.Type),
				"remove the singular attribute or declare the field as a collection")
		}

		return
	}

	if !c.classifier.IsCollectionType(f.Type) {
		diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
			fmt.Sprintf("collection flag set without a collection-shaped type, got %q", f.Type),
			"collections need \"T[]\" with a non-optional element type")

		return
	}

	f.CollectionType = c.resolver.CollectionType(f.CollectionType, true, c.config.DefaultCollectionType)

	if f.Associative && f.Key == "" {
		f.Key = c.config.DefaultKeyType
	}
}

func (c *Completor) completeArray(f *dto.FieldDefinition) {
	defer func() { f.Phase = dto.PhaseArrayCompleted }()

	if !c.classifier.IsArrayType(f.Type) || f.Type == "array" {
		return
	}

	if !f.Collection {
		f.IsArray = true
	}

	f.SingularType = c.resolver.SingularType(f.Type)
	f.SingularNullable = strings.HasPrefix(strings.TrimSuffix(f.Type, "[]"), "?")

	switch {
	case typing.IsValidDtoName(f.SingularType):
		f.Dto = f.SingularType
	case c.classifier.IsClassReference(f.SingularType):
		f.IsClass = true

		if backing := c.resolver.EnumBackingKind(f.SingularType); backing != "" {
			f.Enum = true
			f.EnumBacking = backing
		}

		f.Serialize = c.resolver.DetectAutoSerialize(f.SingularType)
	}
}

// completeNullable computes the nullability-derived variants of the emitted
// hint and the documentation annotation. An "array of (T or null)" keeps the
// null inside the element position; it is never widened to a nullable array.
func (c *Completor) completeNullable(f *dto.FieldDefinition) {
	defer func() { f.Phase = dto.PhaseNullableCompleted }()

	if f.Nullable && f.TypeHint != "" {
		if strings.Contains(f.TypeHint, "|") {
			f.TypeHint += "|null"
		} else {
			f.TypeHint = "?" + f.TypeHint
		}
	}

	f.DocType = c.docType(f)
}

func (c *Completor) docType(f *dto.FieldDefinition) string {
	doc := strings.TrimPrefix(f.Type, "?")

	if f.SingularType != "" {
		key := "int"
		if f.Associative && f.Key != "" {
			key = f.Key
		}

		elem := f.SingularType
		if f.SingularNullable {
			elem += "|null"
		}

		doc = fmt.Sprintf("array<%s, %s>", key, elem)
	}

	if f.Nullable {
		doc += "|null"
	}

	return doc
}

// completeSingular derives the per-element name for collection fields. A
// derivation that would be a no-op fails fast instead of guessing wrong.
// An explicit singular gets the collision check and an adder accessor name
// even without the collection flag.
func (c *Completor) completeSingular(def *dto.Definition, f *dto.FieldDefinition, diags *diagnostic.Diagnostics) {
	defer func() { f.Phase = dto.PhaseSingularCompleted }()

	if f.Singular == "" {
		if !f.Collection {
			return
		}

		singular := inflect.Singularize(f.Name)
		if singular == f.Name {
			diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
				fmt.Sprintf("cannot derive a singular name from %q", f.Name),
				"add an explicit singular attribute")

			return
		}

		f.Singular = singular
	}

	if other := def.Field(f.Singular); other != nil && other != f {
		diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
			fmt.Sprintf("singular name %q collides with field %q", f.Singular, f.Singular),
			"rename one of the fields or set a different singular attribute")

		return
	}

	f.AdderAccessor = inflect.AccessorName(f.Singular)
}
