package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"dto-generator/internal/dto"
)

// tsFileTemplate renders one TypeScript interface per resolved DTO,
// dependencies first.
const tsFileTemplate = `// Code generated by dto-generator. DO NOT EDIT.
{{ range .Defs }}
{{- if .Deprecated }}
/** @deprecated {{ .Deprecated }} */
{{- end }}
export interface {{ .Name }}{{ if .Extends }} extends {{ .Extends }}{{ end }} {
{{- range .Fields }}
  {{ .Name }}{{ if .Optional }}?{{ end }}: {{ .Type }};
{{- end }}
}
{{ end -}}
`

// TSConfig holds configuration for the TypeScript backend.
type TSConfig struct {
	// Filename is the emitted file name.
	Filename string
}

// DefaultTSConfig returns the default TypeScript backend configuration.
func DefaultTSConfig() TSConfig {
	return TSConfig{Filename: "dtos.ts"}
}

type tsDef struct {
	Name       string
	Extends    string
	Deprecated string
	Fields     []tsField
}

type tsField struct {
	Name     string
	Type     string
	Optional bool
}

// TSGenerator emits TypeScript interfaces for a resolved schema set.
type TSGenerator struct {
	config TSConfig
	tmpl   *template.Template
}

// NewTSGenerator creates a TypeScript backend.
func NewTSGenerator(config TSConfig) *TSGenerator {
	return &TSGenerator{
		config: config,
		tmpl:   template.Must(template.New("ts").Parse(tsFileTemplate)),
	}
}

// Generate renders the whole set into one file.
func (g *TSGenerator) Generate(set *dto.SchemaSet) ([]GeneratedFile, error) {
	defs := make([]tsDef, 0, set.Len())

	for _, def := range set.InOrder() {
		out := tsDef{
			Name:       tsName(def.Name),
			Deprecated: def.Deprecated,
		}

		if def.ExtendsDto != "" {
			out.Extends = tsName(def.ExtendsDto)
		}

		for _, f := range def.Fields() {
			out.Fields = append(out.Fields, tsField{
				Name:     f.Name,
				Type:     tsType(f),
				Optional: !f.Required,
			})
		}

		defs = append(defs, out)
	}

	var buf bytes.Buffer

	err := g.tmpl.Execute(&buf, map[string]any{"Defs": defs})
	if err != nil {
		return nil, fmt.Errorf("rendering typescript: %w", err)
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: buf.Bytes()}}, nil
}

// tsName flattens a namespaced logical name into a flat interface name:
// "Billing/Invoice" becomes "BillingInvoice".
func tsName(logical string) string {
	return strings.ReplaceAll(logical, "/", "")
}

// tsType maps a completed field to a TypeScript annotation. Unions keep
// their full precision here: TypeScript can express what the primary
// target's hint degraded away.
func tsType(f *dto.FieldDefinition) string {
	typ := tsBase(f)

	if f.Nullable {
		typ += " | null"
	}

	return typ
}

func tsBase(f *dto.FieldDefinition) string {
	if f.SingularType != "" {
		elem := tsMember(f.SingularType)
		if f.SingularNullable {
			elem = "(" + elem + " | null)"
		}

		if f.Associative {
			key := "string"
			if f.Key == "int" {
				key = "number"
			}

			return fmt.Sprintf("Record<%s, %s>", key, elem)
		}

		return elem + "[]"
	}

	members := strings.Split(strings.TrimPrefix(f.Type, "?"), "|")
	if len(members) > 1 {
		parts := make([]string, 0, len(members))
		for _, m := range members {
			parts = append(parts, tsMember(strings.TrimSpace(m)))
		}

		return strings.Join(parts, " | ")
	}

	return tsMember(strings.TrimPrefix(f.Type, "?"))
}

func tsMember(typ string) string {
	if strings.HasSuffix(typ, "[]") {
		return tsMember(strings.TrimPrefix(strings.TrimSuffix(typ, "[]"), "?")) + "[]"
	}

	switch typ {
	case "int", "float":
		return "number"
	case "string":
		return "string"
	case "bool":
		return "boolean"
	case "array", "iterable":
		return "unknown[]"
	case "object", "callable":
		return "unknown"
	default:
		if strings.HasPrefix(typ, `\`) {
			return "unknown"
		}

		return tsName(typ)
	}
}
