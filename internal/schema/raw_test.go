package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesFieldOrder(t *testing.T) {
	src, err := Parse("order.yaml", []byte(`
Order:
  fields:
    id: int
    createdAt: string
    items:
      type: Item[]
      collection: true
    note: ?string
`))
	require.NoError(t, err)
	require.Contains(t, src.Dtos, "Order")

	raw := src.Dtos["Order"]
	assert.Equal(t, []string{"id", "createdAt", "items", "note"}, raw.FieldOrder)
	assert.Equal(t, "int", raw.Fields["id"].Type)
	assert.Equal(t, "?string", raw.Fields["note"].Type)
	assert.True(t, raw.Fields["items"].Collection)
}

func TestParseFullFieldSpec(t *testing.T) {
	src, err := Parse("user.yaml", []byte(`
User:
  extends: Base
  immutable: true
  deprecated: use Account instead
  traits: [Timestamps]
  fields:
    email:
      type: string
      required: true
      minLength: 3
      maxLength: 254
      pattern: ".+@.+"
      mapFrom: email_address
    age:
      type: int
      min: 0
      max: 150
    tags:
      type: string[]
      collection: true
      collectionType: list
      associative: true
      key: int
      singular: tag
      default: []
`))
	require.NoError(t, err)

	raw := src.Dtos["User"]
	assert.Equal(t, "Base", raw.Extends)
	require.NotNil(t, raw.Immutable)
	assert.True(t, *raw.Immutable)
	assert.Equal(t, "use Account instead", raw.Deprecated)
	assert.Equal(t, []string{"Timestamps"}, raw.Traits)

	email := raw.Fields["email"]
	assert.True(t, email.Required)
	require.NotNil(t, email.MinLength)
	assert.Equal(t, 3, *email.MinLength)
	require.NotNil(t, email.MaxLength)
	assert.Equal(t, 254, *email.MaxLength)
	assert.Equal(t, ".+@.+", email.Pattern)
	assert.Equal(t, "email_address", email.MapFrom)

	age := raw.Fields["age"]
	require.NotNil(t, age.Min)
	assert.Equal(t, 0.0, *age.Min)
	require.NotNil(t, age.Max)
	assert.Equal(t, 150.0, *age.Max)

	tags := raw.Fields["tags"]
	assert.Equal(t, "list", tags.CollectionType)
	assert.True(t, tags.Associative)
	assert.Equal(t, "int", tags.Key)
	assert.Equal(t, "tag", tags.Singular)
	assert.True(t, tags.HasDefault, "an explicit empty default still counts as a default")
}

func TestParseCapturesUnknownKeys(t *testing.T) {
	src, err := Parse("bad.yaml", []byte(`
Order:
  immutible: true
  fields:
    id:
      type: int
      requierd: true
`))
	require.NoError(t, err, "unknown keys are a validation concern, not a parse failure")

	raw := src.Dtos["Order"]
	assert.Equal(t, []string{"immutible"}, raw.UnknownKeys)
	assert.Equal(t, []string{"requierd"}, raw.Fields["id"].UnknownKeys)
}

func TestParseRejectsNonMappingDto(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("Order: [1, 2]\n"))
	assert.Error(t, err)
}

func TestParseJSONInput(t *testing.T) {
	src, err := Parse("order.json", []byte(`{"Order": {"fields": {"id": "int"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "int", src.Dtos["Order"].Fields["id"].Type)
}
