package builder

import (
	"fmt"
	"strings"

	"dto-generator/internal/dto"
)

// buildShape computes the documentation-only array-shape annotation for a
// definition, recursively inlining referenced DTOs' own shapes. Recursion
// terminates at already-visited DTOs by falling back to the DTO name, so
// self-referential schemas that reach this point still produce finite output.
func buildShape(set *dto.SchemaSet, def *dto.Definition) string {
	return shapeOf(set, def, map[string]bool{})
}

func shapeOf(set *dto.SchemaSet, def *dto.Definition, visiting map[string]bool) string {
	visiting[def.Name] = true
	defer delete(visiting, def.Name)

	var parts []string

	// A parent DTO's fields are part of the serialized form, so they are
	// inlined ahead of the child's own fields.
	if def.ExtendsDto != "" {
		if parent := set.Lookup(def.ExtendsDto); parent != nil && !visiting[parent.Name] {
			parentShape := shapeOf(set, parent, visiting)
			parentShape = strings.TrimPrefix(parentShape, "{")
			parentShape = strings.TrimSuffix(parentShape, "}")

			if parentShape != "" {
				parts = append(parts, parentShape)
			}
		}
	}

	for _, f := range def.Fields() {
		parts = append(parts, f.Name+": "+fieldShape(set, f, visiting))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func fieldShape(set *dto.SchemaSet, f *dto.FieldDefinition, visiting map[string]bool) string {
	inlined := ""

	if f.Dto != "" {
		if ref := set.Lookup(f.Dto); ref != nil && !visiting[f.Dto] {
			inlined = shapeOf(set, ref, visiting)
		} else {
			inlined = f.Dto
		}
	}

	switch {
	case f.SingularType != "":
		elem := inlined
		if elem == "" {
			elem = f.SingularType
		}

		if f.SingularNullable {
			elem += "|null"
		}

		key := "int"
		if f.Associative && f.Key != "" {
			key = f.Key
		}

		shape := fmt.Sprintf("array<%s, %s>", key, elem)
		if f.Nullable {
			shape += "|null"
		}

		return shape
	case inlined != "":
		if f.Nullable {
			inlined += "|null"
		}

		return inlined
	default:
		// DocType already carries the nullability variant.
		return f.DocType
	}
}
