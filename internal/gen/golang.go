package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"dto-generator/internal/dto"
	"dto-generator/internal/inflect"
)

// GoConfig holds configuration for the Go accessor backend.
type GoConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// ClassSuffix matches the builder's class-name suffix; it is applied to
	// referenced DTO names so cross-references use emitted type names.
	ClassSuffix string
}

// DefaultGoConfig returns the default Go backend configuration.
func DefaultGoConfig() GoConfig {
	return GoConfig{PackageName: "dtos"}
}

// GoGenerator emits one Go file per resolved DTO: a struct with unexported
// fields, a constructor taking the required fields, getters for every field,
// and setters plus per-element adders when the DTO is mutable.
type GoGenerator struct {
	config GoConfig
}

// NewGoGenerator creates a Go backend.
func NewGoGenerator(config GoConfig) *GoGenerator {
	return &GoGenerator{config: config}
}

// Generate renders every definition in set order.
func (g *GoGenerator) Generate(set *dto.SchemaSet) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, set.Len())

	for _, def := range set.InOrder() {
		content, err := g.renderDefinition(set, def)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", def.Name, err)
		}

		files = append(files, GeneratedFile{
			Filename: inflect.Underscore(def.ClassName) + ".go",
			Content:  content,
		})
	}

	return files, nil
}

func (g *GoGenerator) renderDefinition(set *dto.SchemaSet, def *dto.Definition) ([]byte, error) {
	f := jen.NewFile(g.config.PackageName)
	f.HeaderComment("Code generated by dto-generator. DO NOT EDIT.")

	class := def.ClassName

	structComment := fmt.Sprintf("%s is generated from the %q schema.", class, def.Name)
	if def.Deprecated != "" {
		structComment += "\n\nDeprecated: " + def.Deprecated
	}

	f.Comment(structComment)
	f.Type().Id(class).StructFunc(func(s *jen.Group) {
		if def.ExtendsDto != "" {
			if parent := set.Lookup(def.ExtendsDto); parent != nil {
				s.Id(parent.ClassName)
			}
		}

		for _, field := range def.Fields() {
			s.Id(field.Name).Add(g.goType(set, field))
		}
	})

	g.renderConstructor(f, set, def)

	for _, field := range def.Fields() {
		g.renderAccessors(f, set, def, field)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (g *GoGenerator) renderConstructor(f *jen.File, set *dto.SchemaSet, def *dto.Definition) {
	class := def.ClassName

	var required []*dto.FieldDefinition

	for _, field := range def.Fields() {
		if field.Required {
			required = append(required, field)
		}
	}

	f.Commentf("New%s creates a %s with all required fields set.", class, class)
	f.Func().Id("New"+class).ParamsFunc(func(p *jen.Group) {
		for _, field := range required {
			p.Id(field.Name).Add(g.goType(set, field))
		}
	}).Op("*").Id(class).Block(
		jen.Return(jen.Op("&").Id(class).ValuesFunc(func(v *jen.Group) {
			for _, field := range required {
				v.Id(field.Name).Op(":").Id(field.Name)
			}
		})),
	)
}

func (g *GoGenerator) renderAccessors(f *jen.File, set *dto.SchemaSet, def *dto.Definition, field *dto.FieldDefinition) {
	class := def.ClassName
	typ := g.goType(set, field)
	recv := jen.Id("d").Op("*").Id(class)

	f.Func().Params(recv).Id(field.Accessor).Params().Add(typ).Block(
		jen.Return(jen.Id("d").Dot(field.Name)),
	)

	if def.Immutable {
		return
	}

	f.Func().Params(jen.Id("d").Op("*").Id(class)).Id("Set"+field.Accessor).Params(jen.Id("v").Add(g.goType(set, field))).Block(
		jen.Id("d").Dot(field.Name).Op("=").Id("v"),
	)

	if field.Collection && field.AdderAccessor != "" {
		g.renderAdder(f, set, def, field)
	}
}

func (g *GoGenerator) renderAdder(f *jen.File, set *dto.SchemaSet, def *dto.Definition, field *dto.FieldDefinition) {
	class := def.ClassName
	elem := g.goElemType(set, field)

	if field.Associative {
		key := jen.String()
		if field.Key == "int" {
			key = jen.Int()
		}

		f.Func().Params(jen.Id("d").Op("*").Id(class)).Id("Add"+field.AdderAccessor).
			Params(jen.Id("k").Add(key), jen.Id("v").Add(elem)).
			BlockFunc(func(b *jen.Group) {
				b.If(jen.Id("d").Dot(field.Name).Op("==").Nil()).Block(
					jen.Id("d").Dot(field.Name).Op("=").Add(g.goType(set, field)).Values(),
				)
				b.Id("d").Dot(field.Name).Index(jen.Id("k")).Op("=").Id("v")
			})

		return
	}

	f.Func().Params(jen.Id("d").Op("*").Id(class)).Id("Add"+field.AdderAccessor).
		Params(jen.Id("v").Add(elem)).
		Block(
			jen.Id("d").Dot(field.Name).Op("=").Append(jen.Id("d").Dot(field.Name), jen.Id("v")),
		)
}

// goType maps a completed field to its Go type.
func (g *GoGenerator) goType(set *dto.SchemaSet, field *dto.FieldDefinition) *jen.Statement {
	if field.SingularType != "" {
		elem := g.goElemType(set, field)

		if field.Associative {
			if field.Key == "int" {
				return jen.Map(jen.Int()).Add(elem)
			}

			return jen.Map(jen.String()).Add(elem)
		}

		return jen.Index().Add(elem)
	}

	if field.Dto != "" {
		return jen.Op("*").Id(g.refClassName(set, field.Dto))
	}

	if field.IsClass {
		return jen.Any()
	}

	base, ok := goScalar(strings.TrimPrefix(field.Type, "?"))
	if !ok {
		// Unions and untyped arrays degrade the same way the emitted hint
		// does; the full union survives in the doc annotation only.
		if field.TypeHint == "array" || field.Type == "array" {
			return jen.Index().Any()
		}

		return jen.Any()
	}

	if field.Nullable {
		return jen.Op("*").Add(base)
	}

	return base
}

// goElemType maps a collection element to its Go type.
func (g *GoGenerator) goElemType(set *dto.SchemaSet, field *dto.FieldDefinition) *jen.Statement {
	if field.Dto != "" {
		return jen.Op("*").Id(g.refClassName(set, field.Dto))
	}

	if base, ok := goScalar(field.SingularType); ok {
		if field.SingularNullable {
			return jen.Op("*").Add(base)
		}

		return base
	}

	return jen.Any()
}

func (g *GoGenerator) refClassName(set *dto.SchemaSet, logical string) string {
	if ref := set.Lookup(logical); ref != nil {
		return ref.ClassName
	}

	segments := strings.Split(logical, "/")

	return segments[len(segments)-1] + g.config.ClassSuffix
}

func goScalar(typ string) (*jen.Statement, bool) {
	switch typ {
	case "int":
		return jen.Int(), true
	case "float":
		return jen.Float64(), true
	case "string":
		return jen.String(), true
	case "bool":
		return jen.Bool(), true
	case "iterable":
		return jen.Index().Any(), true
	case "object":
		return jen.Any(), true
	default:
		return nil, false
	}
}
