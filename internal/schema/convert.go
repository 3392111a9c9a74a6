package schema

import (
	"dto-generator/internal/dto"
)

// Definition converts a merged raw declaration into a pipeline definition.
// All fields start in the RawDeclared phase.
func (d *RawDto) Definition(name string, files []string) *dto.Definition {
	def := dto.NewDefinition(name)
	def.Extends = d.Extends
	def.Deprecated = d.Deprecated
	def.Traits = append([]string(nil), d.Traits...)
	def.SourceFiles = append([]string(nil), files...)

	if d.Immutable != nil {
		def.Immutable = *d.Immutable
	}

	for _, fieldName := range d.FieldOrder {
		raw := d.Fields[fieldName]

		def.AddField(&dto.FieldDefinition{
			Name:           fieldName,
			Type:           raw.Type,
			Required:       raw.Required,
			DefaultValue:   raw.DefaultValue,
			HasDefault:     raw.HasDefault,
			Collection:     raw.Collection,
			CollectionType: raw.CollectionType,
			Associative:    raw.Associative,
			Key:            raw.Key,
			Singular:       raw.Singular,
			Factory:        raw.Factory,
			MapFrom:        raw.MapFrom,
			MapTo:          raw.MapTo,
			TransformFrom:  raw.TransformFrom,
			TransformTo:    raw.TransformTo,
			MinLength:      raw.MinLength,
			MaxLength:      raw.MaxLength,
			Min:            raw.Min,
			Max:            raw.Max,
			Pattern:        raw.Pattern,
			Phase:          dto.PhaseRawDeclared,
		})
	}

	return def
}
