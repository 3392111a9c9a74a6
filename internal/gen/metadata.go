package gen

import (
	"encoding/json"
	"fmt"

	"dto-generator/internal/dto"
)

// MetaConfig holds configuration for the metadata backend.
type MetaConfig struct {
	// Filename is the emitted file name.
	Filename string
}

// DefaultMetaConfig returns the default metadata backend configuration.
func DefaultMetaConfig() MetaConfig {
	return MetaConfig{Filename: "dtos.meta.json"}
}

type metaDef struct {
	Name       string          `json:"name"`
	Namespace  string          `json:"namespace,omitempty"`
	ClassName  string          `json:"className"`
	Extends    string          `json:"extends,omitempty"`
	Traits     []string        `json:"traits,omitempty"`
	Immutable  bool            `json:"immutable,omitempty"`
	Deprecated string          `json:"deprecated,omitempty"`
	Shape      string          `json:"shape,omitempty"`
	Fields     []dto.FieldMeta `json:"fields"`
}

// MetaGenerator emits the minimized per-field metadata projection as JSON.
// The projection drops derivable attributes; anything a hydrator can recompute
// from the field name stays out of the artifact.
type MetaGenerator struct {
	config MetaConfig
}

// NewMetaGenerator creates a metadata backend.
func NewMetaGenerator(config MetaConfig) *MetaGenerator {
	return &MetaGenerator{config: config}
}

// Generate renders the whole set into one document, in emission order.
func (g *MetaGenerator) Generate(set *dto.SchemaSet) ([]GeneratedFile, error) {
	defs := make([]metaDef, 0, set.Len())

	for _, def := range set.InOrder() {
		defs = append(defs, metaDef{
			Name:       def.Name,
			Namespace:  def.Namespace,
			ClassName:  def.ClassName,
			Extends:    def.Extends,
			Traits:     def.Traits,
			Immutable:  def.Immutable,
			Deprecated: def.Deprecated,
			Shape:      def.ArrayShape,
			Fields:     def.Meta,
		})
	}

	data, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering metadata: %w", err)
	}

	return []GeneratedFile{{Filename: g.config.Filename, Content: append(data, '\n')}}, nil
}
