package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"dto-generator/internal/dto"
	"dto-generator/internal/typing"
)

// SchemaConfig holds configuration for the JSON Schema backend.
type SchemaConfig struct {
	// Filename is the emitted file name.
	Filename string
	// Title is the root schema title.
	Title string
}

// DefaultSchemaConfig returns the default JSON Schema backend configuration.
func DefaultSchemaConfig() SchemaConfig {
	return SchemaConfig{Filename: "dtos.schema.json", Title: "dtos"}
}

// SchemaGenerator emits one JSON Schema document with a $def per DTO.
// Validation constraints survive here even though they are excluded from the
// minimized accessor metadata.
type SchemaGenerator struct {
	config SchemaConfig
}

// NewSchemaGenerator creates a JSON Schema backend.
func NewSchemaGenerator(config SchemaConfig) *SchemaGenerator {
	return &SchemaGenerator{config: config}
}

// Generate renders the whole set into one document.
func (g *SchemaGenerator) Generate(set *dto.SchemaSet) ([]GeneratedFile, error) {
	root := &jsonschema.Schema{
		Title: g.config.Title,
		Defs:  make(map[string]*jsonschema.Schema, set.Len()),
	}

	for _, def := range set.InOrder() {
		root.Defs[tsName(def.Name)] = g.defSchema(def)
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering json schema: %w", err)
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: append(data, '\n')}}, nil
}

func (g *SchemaGenerator) defSchema(def *dto.Definition) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(def.FieldNames())),
	}

	if def.Deprecated != "" {
		schema.Description = "Deprecated: " + def.Deprecated
	}

	for _, f := range def.Fields() {
		name := f.Name
		if f.MapTo != "" {
			name = f.MapTo
		}

		schema.Properties[name] = g.fieldSchema(f)

		if f.Required {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

func (g *SchemaGenerator) fieldSchema(f *dto.FieldDefinition) *jsonschema.Schema {
	schema := g.baseSchema(f)

	if f.Pattern != "" {
		schema.Pattern = f.Pattern
	}

	if f.MinLength != nil {
		schema.MinLength = f.MinLength
	}

	if f.MaxLength != nil {
		schema.MaxLength = f.MaxLength
	}

	if f.Min != nil {
		schema.Minimum = f.Min
	}

	if f.Max != nil {
		schema.Maximum = f.Max
	}

	return schema
}

func (g *SchemaGenerator) baseSchema(f *dto.FieldDefinition) *jsonschema.Schema {
	if f.SingularType != "" {
		return &jsonschema.Schema{
			Type:  "array",
			Items: memberSchema(f.SingularType),
		}
	}

	if f.Dto != "" {
		return refSchema(f.Dto)
	}

	return memberSchema(strings.TrimPrefix(f.Type, "?"))
}

func memberSchema(typ string) *jsonschema.Schema {
	if strings.HasSuffix(typ, "[]") {
		return &jsonschema.Schema{
			Type:  "array",
			Items: memberSchema(strings.TrimPrefix(strings.TrimSuffix(typ, "[]"), "?")),
		}
	}

	switch typ {
	case "int":
		return &jsonschema.Schema{Type: "integer"}
	case "float":
		return &jsonschema.Schema{Type: "number"}
	case "string":
		return &jsonschema.Schema{Type: "string"}
	case "bool":
		return &jsonschema.Schema{Type: "boolean"}
	case "array", "iterable":
		return &jsonschema.Schema{Type: "array"}
	case "object", "callable":
		return &jsonschema.Schema{}
	default:
		// Only DTO references may become $refs; class references, unions, and
		// configured extra scalars have no $def to point at.
		if typing.IsValidDtoName(typ) {
			return refSchema(typ)
		}

		return &jsonschema.Schema{}
	}
}

func refSchema(logical string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/$defs/" + tsName(logical)}
}
