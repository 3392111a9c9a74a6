package gen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dto-generator/internal/builder"
	"dto-generator/internal/dto"
	"dto-generator/internal/gen"
	"dto-generator/internal/schema"
)

func resolve(t *testing.T, config builder.Config, doc string) *dto.SchemaSet {
	t.Helper()

	src, err := schema.Parse("test.yaml", []byte(doc))
	require.NoError(t, err)

	set, err := builder.New(config).BuildFromSources(context.Background(), []*schema.Source{src})
	require.NoError(t, err)

	return set
}

const orderSchema = `
Item:
  fields:
    sku:
      type: string
      required: true

Order:
  fields:
    id:
      type: int
      required: true
    items:
      type: Item[]
      collection: true
      required: true
    note: ?string
`

func TestGoGeneratorEmitsAccessors(t *testing.T) {
	config := builder.DefaultConfig()
	config.ClassSuffix = "Dto"

	set := resolve(t, config, orderSchema)

	files, err := gen.NewGoGenerator(gen.GoConfig{PackageName: "dtos", ClassSuffix: "Dto"}).Generate(set)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "item_dto.go", files[0].Filename)
	assert.Equal(t, "order_dto.go", files[1].Filename)

	order := string(files[1].Content)

	assert.Contains(t, order, "package dtos")
	assert.Contains(t, order, "Code generated by dto-generator. DO NOT EDIT.")
	assert.Contains(t, order, "type OrderDto struct")
	assert.Contains(t, order, "items []*ItemDto")
	assert.Contains(t, order, "func NewOrderDto(id int, items []*ItemDto) *OrderDto")
	assert.Contains(t, order, "func (d *OrderDto) Id() int")
	assert.Contains(t, order, "func (d *OrderDto) SetItems(v []*ItemDto)")
	assert.Contains(t, order, "func (d *OrderDto) AddItem(v *ItemDto)")

	// Optional scalar becomes a pointer.
	assert.Contains(t, order, "note *string")
}

func TestGoGeneratorImmutableSkipsSetters(t *testing.T) {
	set := resolve(t, builder.DefaultConfig(), `
Point:
  immutable: true
  fields:
    x:
      type: int
      required: true
`)

	files, err := gen.NewGoGenerator(gen.DefaultGoConfig()).Generate(set)
	require.NoError(t, err)

	point := string(files[0].Content)
	assert.Contains(t, point, "func (d *Point) X() int")
	assert.NotContains(t, point, "SetX")
}

func TestGoGeneratorAssociativeAdder(t *testing.T) {
	set := resolve(t, builder.DefaultConfig(), `
Index:
  fields:
    entries:
      type: string[]
      collection: true
      associative: true
      singular: entry
      required: true
`)

	files, err := gen.NewGoGenerator(gen.DefaultGoConfig()).Generate(set)
	require.NoError(t, err)

	index := string(files[0].Content)
	assert.Contains(t, index, "entries map[string]string")
	assert.Contains(t, index, "func (d *Index) AddEntry(k string, v string)")
	assert.Contains(t, index, "d.entries[k] = v")
}

func TestGoGeneratorEmbedsParent(t *testing.T) {
	set := resolve(t, builder.DefaultConfig(), `
Base:
  fields:
    id:
      type: int
      required: true

Named:
  extends: Base
  fields:
    name:
      type: string
      required: true
`)

	files, err := gen.NewGoGenerator(gen.DefaultGoConfig()).Generate(set)
	require.NoError(t, err)

	var named string

	for _, f := range files {
		if f.Filename == "named.go" {
			named = string(f.Content)
		}
	}

	require.NotEmpty(t, named)

	structIdx := strings.Index(named, "type Named struct")
	require.Positive(t, structIdx)
	assert.Contains(t, named[structIdx:], "Base")
}

func TestGoGeneratorDeprecatedComment(t *testing.T) {
	set := resolve(t, builder.DefaultConfig(), `
Old:
  deprecated: use New instead
  fields:
    x:
      type: int
      required: true
`)

	files, err := gen.NewGoGenerator(gen.DefaultGoConfig()).Generate(set)
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "Deprecated: use New instead")
}
