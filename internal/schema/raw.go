package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawDto is one DTO declaration as parsed from a single source file, before
// merging, validation, or completion.
type RawDto struct {
	Extends    string
	Immutable  *bool
	Traits     []string
	Deprecated string

	// Fields maps field name to its raw spec; FieldOrder preserves the
	// declaration order from the document.
	Fields     map[string]*RawField
	FieldOrder []string

	// UnknownKeys lists unrecognized DTO-level attribute keys, reported by
	// the validator.
	UnknownKeys []string
}

// UnmarshalYAML decodes a DTO declaration, preserving field order.
func (d *RawDto) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("dto declaration must be a mapping, got %s", nodeKind(node))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		var err error

		switch key {
		case "extends":
			err = val.Decode(&d.Extends)
		case "immutable":
			var b bool

			err = val.Decode(&b)
			d.Immutable = &b
		case "traits":
			err = val.Decode(&d.Traits)
		case "deprecated":
			err = val.Decode(&d.Deprecated)
		case "fields":
			err = d.decodeFields(val)
		default:
			d.UnknownKeys = append(d.UnknownKeys, key)
		}

		if err != nil {
			return fmt.Errorf("decoding dto attribute %q: %w", key, err)
		}
	}

	return nil
}

func (d *RawDto) decodeFields(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("fields must be a mapping, got %s", nodeKind(node))
	}

	d.Fields = make(map[string]*RawField, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		field := &RawField{}
		if err := node.Content[i+1].Decode(field); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}

		if _, ok := d.Fields[name]; !ok {
			d.FieldOrder = append(d.FieldOrder, name)
		}

		d.Fields[name] = field
	}

	return nil
}

// RawField is one raw field spec. In YAML it is either a bare type string or
// a full spec mapping.
type RawField struct {
	Type string

	Required     bool
	DefaultValue any
	HasDefault   bool

	Collection     bool
	CollectionType string
	Associative    bool
	Key            string
	Singular       string

	Factory       string
	MapFrom       string
	MapTo         string
	TransformFrom string
	TransformTo   string

	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
	Pattern   string

	// UnknownKeys lists unrecognized field attribute keys, reported by the
	// validator (attribute keys must be the documented camelCase set).
	UnknownKeys []string
}

// UnmarshalYAML decodes either the bare type string shorthand or the full
// field spec mapping.
func (f *RawField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Type)
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("field spec must be a type string or a mapping, got %s", nodeKind(node))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		var err error

		switch key {
		case "type":
			err = val.Decode(&f.Type)
		case "required":
			err = val.Decode(&f.Required)
		case "default":
			f.HasDefault = true
			err = val.Decode(&f.DefaultValue)
		case "collection":
			err = val.Decode(&f.Collection)
		case "collectionType":
			err = val.Decode(&f.CollectionType)
		case "associative":
			err = val.Decode(&f.Associative)
		case "key":
			err = val.Decode(&f.Key)
		case "singular":
			err = val.Decode(&f.Singular)
		case "factory":
			err = val.Decode(&f.Factory)
		case "mapFrom":
			err = val.Decode(&f.MapFrom)
		case "mapTo":
			err = val.Decode(&f.MapTo)
		case "transformFrom":
			err = val.Decode(&f.TransformFrom)
		case "transformTo":
			err = val.Decode(&f.TransformTo)
		case "minLength":
			err = decodePtr(val, &f.MinLength)
		case "maxLength":
			err = decodePtr(val, &f.MaxLength)
		case "min":
			err = decodePtr(val, &f.Min)
		case "max":
			err = decodePtr(val, &f.Max)
		case "pattern":
			err = val.Decode(&f.Pattern)
		default:
			f.UnknownKeys = append(f.UnknownKeys, key)
		}

		if err != nil {
			return fmt.Errorf("decoding field attribute %q: %w", key, err)
		}
	}

	return nil
}

func decodePtr[T any](node *yaml.Node, dst **T) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}

	*dst = &v

	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
