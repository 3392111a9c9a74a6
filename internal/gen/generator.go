package gen

import "dto-generator/internal/dto"

// Generator renders a resolved schema set into artifacts.
type Generator interface {
	Generate(set *dto.SchemaSet) ([]GeneratedFile, error)
}
