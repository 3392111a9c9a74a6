package dto

// FieldMeta is the minimized per-field projection the generated accessor code
// needs at reflection time. Validation-constraint and documentation-only keys
// are deliberately excluded to keep generated metadata compact.
type FieldMeta struct {
	Name           string `json:"name" yaml:"name"`
	Type           string `json:"type" yaml:"type"`
	IsClass        bool   `json:"isClass,omitempty" yaml:"isClass,omitempty"`
	Enum           bool   `json:"enum,omitempty" yaml:"enum,omitempty"`
	Serialize      string `json:"serialize,omitempty" yaml:"serialize,omitempty"`
	Factory        string `json:"factory,omitempty" yaml:"factory,omitempty"`
	Required       bool   `json:"required,omitempty" yaml:"required,omitempty"`
	DefaultValue   any    `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Dto            string `json:"dto,omitempty" yaml:"dto,omitempty"`
	CollectionType string `json:"collectionType,omitempty" yaml:"collectionType,omitempty"`
	SingularType   string `json:"singularType,omitempty" yaml:"singularType,omitempty"`
	Associative    bool   `json:"associative,omitempty" yaml:"associative,omitempty"`
	Key            string `json:"key,omitempty" yaml:"key,omitempty"`
	MapFrom        string `json:"mapFrom,omitempty" yaml:"mapFrom,omitempty"`
	MapTo          string `json:"mapTo,omitempty" yaml:"mapTo,omitempty"`
	TransformFrom  string `json:"transformFrom,omitempty" yaml:"transformFrom,omitempty"`
	TransformTo    string `json:"transformTo,omitempty" yaml:"transformTo,omitempty"`
}

// Meta returns the field's minimized metadata projection.
func (f *FieldDefinition) Meta() FieldMeta {
	return FieldMeta{
		Name:           f.Name,
		Type:           f.Type,
		IsClass:        f.IsClass,
		Enum:           f.Enum,
		Serialize:      f.Serialize,
		Factory:        f.Factory,
		Required:       f.Required,
		DefaultValue:   f.DefaultValue,
		Dto:            f.Dto,
		CollectionType: f.CollectionType,
		SingularType:   f.SingularType,
		Associative:    f.Associative,
		Key:            f.Key,
		MapFrom:        f.MapFrom,
		MapTo:          f.MapTo,
		TransformFrom:  f.TransformFrom,
		TransformTo:    f.TransformTo,
	}
}
