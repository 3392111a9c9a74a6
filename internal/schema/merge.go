package schema

import (
	"fmt"

	"dto-generator/internal/diagnostic"
)

// Merged is the result of combining all source files: one raw declaration per
// DTO name, plus the files that contributed to each.
type Merged struct {
	Dtos  map[string]*RawDto
	Files map[string][]string
}

// Merge combines per-file sources. Merging disjoint field sets for the same
// DTO is commutative; a field declared with a type in more than one file must
// carry the identical type string everywhere, otherwise a merge_conflict
// diagnostic names the DTO, the field, and both files.
func Merge(sources []*Source) (*Merged, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	merged := &Merged{
		Dtos:  make(map[string]*RawDto),
		Files: make(map[string][]string),
	}

	for _, src := range sources {
		for name, raw := range src.Dtos {
			existing, ok := merged.Dtos[name]
			if !ok {
				merged.Dtos[name] = cloneRawDto(raw)
				merged.Files[name] = []string{src.Path}

				continue
			}

			mergeDto(name, existing, raw, merged.Files[name], src.Path, diags)
			merged.Files[name] = append(merged.Files[name], src.Path)
		}
	}

	return merged, diags
}

func mergeDto(name string, dst, src *RawDto, dstFiles []string, srcFile string, diags *diagnostic.Diagnostics) {
	prevFile := ""
	if len(dstFiles) > 0 {
		prevFile = dstFiles[len(dstFiles)-1]
	}

	if dst.Extends != "" && src.Extends != "" && dst.Extends != src.Extends {
		diags.Add(diagnostic.CodeMergeConflict, name, "",
			fmt.Sprintf("extends declared as %q in %s and %q in %s",
				dst.Extends, prevFile, src.Extends, srcFile),
			"declare the same extends target in every file, or drop it from all but one")
	} else if dst.Extends == "" {
		dst.Extends = src.Extends
	}

	if dst.Immutable != nil && src.Immutable != nil && *dst.Immutable != *src.Immutable {
		diags.Add(diagnostic.CodeMergeConflict, name, "",
			fmt.Sprintf("immutable declared as %v in %s and %v in %s",
				*dst.Immutable, prevFile, *src.Immutable, srcFile),
			"declare the same immutability in every file")
	} else if dst.Immutable == nil {
		dst.Immutable = src.Immutable
	}

	if dst.Deprecated == "" {
		dst.Deprecated = src.Deprecated
	}

	dst.Traits = appendUnique(dst.Traits, src.Traits)
	dst.UnknownKeys = appendUnique(dst.UnknownKeys, src.UnknownKeys)

	for _, fieldName := range src.FieldOrder {
		srcField := src.Fields[fieldName]

		dstField, ok := dst.Fields[fieldName]
		if !ok {
			if dst.Fields == nil {
				dst.Fields = make(map[string]*RawField)
			}

			dst.Fields[fieldName] = cloneRawField(srcField)
			dst.FieldOrder = append(dst.FieldOrder, fieldName)

			continue
		}

		if dstField.Type != "" && srcField.Type != "" && dstField.Type != srcField.Type {
			diags.Add(diagnostic.CodeMergeConflict, name, fieldName,
				fmt.Sprintf("type declared as %q in %s and %q in %s",
					dstField.Type, prevFile, srcField.Type, srcFile),
				"the same field must carry an identical type string in every file")

			continue
		}

		mergeField(dstField, srcField)
	}
}

// mergeField fills unset attributes of dst from src. Types were already
// checked for conflicts; everything else combines on a first-set-wins basis.
func mergeField(dst, src *RawField) {
	if dst.Type == "" {
		dst.Type = src.Type
	}

	dst.Required = dst.Required || src.Required
	dst.Collection = dst.Collection || src.Collection
	dst.Associative = dst.Associative || src.Associative

	if !dst.HasDefault && src.HasDefault {
		dst.DefaultValue = src.DefaultValue
		dst.HasDefault = true
	}

	setIfEmpty(&dst.CollectionType, src.CollectionType)
	setIfEmpty(&dst.Key, src.Key)
	setIfEmpty(&dst.Singular, src.Singular)
	setIfEmpty(&dst.Factory, src.Factory)
	setIfEmpty(&dst.MapFrom, src.MapFrom)
	setIfEmpty(&dst.MapTo, src.MapTo)
	setIfEmpty(&dst.TransformFrom, src.TransformFrom)
	setIfEmpty(&dst.TransformTo, src.TransformTo)
	setIfEmpty(&dst.Pattern, src.Pattern)

	if dst.MinLength == nil {
		dst.MinLength = src.MinLength
	}

	if dst.MaxLength == nil {
		dst.MaxLength = src.MaxLength
	}

	if dst.Min == nil {
		dst.Min = src.Min
	}

	if dst.Max == nil {
		dst.Max = src.Max
	}

	dst.UnknownKeys = appendUnique(dst.UnknownKeys, src.UnknownKeys)
}

func setIfEmpty(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

func appendUnique(dst, src []string) []string {
	for _, s := range src {
		found := false

		for _, d := range dst {
			if d == s {
				found = true
				break
			}
		}

		if !found {
			dst = append(dst, s)
		}
	}

	return dst
}

func cloneRawDto(raw *RawDto) *RawDto {
	clone := &RawDto{
		Extends:     raw.Extends,
		Immutable:   raw.Immutable,
		Deprecated:  raw.Deprecated,
		Traits:      append([]string(nil), raw.Traits...),
		UnknownKeys: append([]string(nil), raw.UnknownKeys...),
		FieldOrder:  append([]string(nil), raw.FieldOrder...),
		Fields:      make(map[string]*RawField, len(raw.Fields)),
	}

	for name, field := range raw.Fields {
		clone.Fields[name] = cloneRawField(field)
	}

	return clone
}

func cloneRawField(field *RawField) *RawField {
	clone := *field
	clone.UnknownKeys = append([]string(nil), field.UnknownKeys...)

	return &clone
}
