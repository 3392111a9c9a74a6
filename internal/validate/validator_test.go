package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
	"dto-generator/internal/schema"
	"dto-generator/internal/typing"
)

func testValidator() *Validator {
	return NewValidator(typing.NewClassifier(typing.NewClassRegistry(
		typing.ClassInfo{Name: `App\Money`},
	)))
}

func addField(def *dto.Definition, name, typ string) *dto.FieldDefinition {
	f := &dto.FieldDefinition{Name: name, Type: typ}
	def.AddField(f)

	return f
}

func TestValidateCleanDefinition(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Billing/Invoice")
	addField(def, "id", "int")
	addField(def, "total", `\App\Money`)
	addField(def, "lines", "Item[]").Collection = true

	diags := v.ValidateDefinition(def)
	assert.False(t, diags.HasErrors(), "expected no diagnostics, got %v", diags.Err())
}

// A broken DTO name short-circuits field checks: every follow-on error would
// just restate the root cause.
func TestValidateDtoNameShortCircuits(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("my_dto")
	addField(def, "BadName", "nonsense")

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeNameFormat, diags.Errors[0].Code)
	assert.Equal(t, "my_dto", diags.Errors[0].Dto)
}

func TestValidateFieldNameAndType(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Order")
	addField(def, "CreatedAt", "string")
	addField(def, "status", "enum-of-things")

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeNameFormat, diags.Errors[0].Code)
	assert.Equal(t, "CreatedAt", diags.Errors[0].Field)
	assert.Equal(t, diagnostic.CodeTypeInvalid, diags.Errors[1].Code)
	assert.Equal(t, "status", diags.Errors[1].Field)
}

func TestValidateCollectionShape(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Order")
	addField(def, "items", "string").Collection = true

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeCollectionConfig, diags.Errors[0].Code)
}

func TestValidateSingularOnNonCollection(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Order")
	addField(def, "note", "string").Singular = "note"

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeCollectionConfig, diags.Errors[0].Code)
}

func TestValidateSingularNameShape(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Order")
	f := addField(def, "items", "Item[]")
	f.Collection = true
	f.Singular = "The_Item"

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeNameFormat, diags.Errors[0].Code)
}

// "itemId" and "itemID" survive the per-field checks individually but emit
// the same accessor name.
func TestValidateAccessorCollision(t *testing.T) {
	v := testValidator()

	def := dto.NewDefinition("Order")
	addField(def, "itemId", "int")
	addField(def, "itemID", "int")

	diags := v.ValidateDefinition(def)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeMethodCollision, diags.Errors[0].Code)
	assert.Equal(t, "itemID", diags.Errors[0].Field)
	assert.Contains(t, diags.Errors[0].Message, "ItemId")
}

func TestValidateRawUnknownKeys(t *testing.T) {
	v := testValidator()

	raw := &schema.RawDto{
		UnknownKeys: []string{"immutible"},
		FieldOrder:  []string{"id"},
		Fields: map[string]*schema.RawField{
			"id": {Type: "int", UnknownKeys: []string{"requierd"}},
		},
	}

	diags := v.ValidateRaw("Order", raw)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeNameFormat, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "immutible")
	assert.Equal(t, "id", diags.Errors[1].Field)
	assert.Contains(t, diags.Errors[1].Message, "requierd")
}
