// Package validate performs structural validation of DTO definitions before
// field completion: name shape, field name shape, type validity, collection
// configuration consistency, attribute-key consistency, and accessor-name
// collision detection.
package validate

import (
	"fmt"

	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
	"dto-generator/internal/inflect"
	"dto-generator/internal/schema"
	"dto-generator/internal/typing"
)

// Validator validates one DTO definition at a time. Whole-graph checks
// (cycles, extends resolution) live in their own packages.
type Validator struct {
	classifier *typing.Classifier
}

// NewValidator creates a validator.
func NewValidator(classifier *typing.Classifier) *Validator {
	return &Validator{classifier: classifier}
}

// ValidateDefinition checks a definition in category order: DTO name first,
// then per-field checks, then the whole-DTO accessor collision scan. The
// first failing category short-circuits the later ones, so errors stay
// focused on the root cause.
func (v *Validator) ValidateDefinition(def *dto.Definition) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if !typing.IsValidDtoName(def.Name) {
		diags.Add(diagnostic.CodeNameFormat, def.Name, "",
			fmt.Sprintf("dto name %q is not valid", def.Name),
			"use PascalCase segments separated by \"/\", e.g. \"Billing/Invoice\"")

		return diags
	}

	for _, f := range def.Fields() {
		v.validateField(def, f, diags)
	}

	if diags.HasErrors() {
		return diags
	}

	v.scanAccessorCollisions(def, diags)

	return diags
}

func (v *Validator) validateField(def *dto.Definition, f *dto.FieldDefinition, diags *diagnostic.Diagnostics) {
	if !typing.IsValidFieldName(f.Name) {
		diags.Add(diagnostic.CodeNameFormat, def.Name, f.Name,
			fmt.Sprintf("field name %q is not valid", f.Name),
			"field names must be camelCase identifiers")

		return
	}

	if f.Type == "" || !v.classifier.IsValidType(f.Type) {
		diags.Add(diagnostic.CodeTypeInvalid, def.Name, f.Name,
			fmt.Sprintf("type %q is not a recognized type string", f.Type),
			"use a scalar, a PascalCase DTO name, a \\-prefixed known class, \"T[]\", or a union of those")

		return
	}

	if f.Collection && !v.classifier.IsCollectionType(f.Type) {
		diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
			fmt.Sprintf("collection flag set without a collection-shaped type, got %q", f.Type),
			"collections need \"T[]\" with a non-optional element type")
	}

	if f.Singular != "" && !f.Collection && !v.classifier.IsArrayType(f.Type) {
		diags.Add(diagnostic.CodeCollectionConfig, def.Name, f.Name,
			fmt.Sprintf("singular name set on non-collection type %q", f.Type),
			"remove the singular attribute or declare the field as a collection")
	}

	if f.Singular != "" && !typing.IsValidFieldName(f.Singular) {
		diags.Add(diagnostic.CodeNameFormat, def.Name, f.Name,
			fmt.Sprintf("singular name %q is not valid", f.Singular),
			"singular names must be camelCase identifiers")
	}
}

// scanAccessorCollisions derives each field's accessor stem the same way the
// completor stores it and requires uniqueness per DTO. This catches names
// that differ only in a casing the method naming collapses, e.g. "itemId"
// and "itemID".
func (v *Validator) scanAccessorCollisions(def *dto.Definition, diags *diagnostic.Diagnostics) {
	seen := make(map[string]string, len(def.FieldNames()))

	for _, f := range def.Fields() {
		stem := inflect.AccessorName(f.Name)

		if other, ok := seen[stem]; ok {
			diags.Add(diagnostic.CodeMethodCollision, def.Name, f.Name,
				fmt.Sprintf("fields %q and %q generate the same accessor name %q", other, f.Name, stem),
				"rename one of the fields")

			continue
		}

		seen[stem] = f.Name
	}
}

// ValidateRaw checks parse-level concerns that do not survive conversion to a
// definition: attribute keys must come from the documented camelCase set.
func (v *Validator) ValidateRaw(name string, raw *schema.RawDto) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, key := range raw.UnknownKeys {
		diags.Add(diagnostic.CodeNameFormat, name, "",
			fmt.Sprintf("unknown dto attribute %q", key),
			"allowed attributes: extends, immutable, traits, deprecated, fields")
	}

	for _, fieldName := range raw.FieldOrder {
		for _, key := range raw.Fields[fieldName].UnknownKeys {
			diags.Add(diagnostic.CodeNameFormat, name, fieldName,
				fmt.Sprintf("unknown field attribute %q", key),
				"field attribute keys are camelCase, e.g. collectionType, mapFrom, transformTo")
		}
	}

	return diags
}
