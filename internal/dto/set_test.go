package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namesOf(defs []*Definition) []string {
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}

	return names
}

func TestSchemaSetOrder(t *testing.T) {
	set := NewSchemaSet()
	set.Add(NewDefinition("Order"))
	set.Add(NewDefinition("Item"))
	set.Add(NewDefinition("Customer"))

	// Names sorts, InOrder keeps insertion order until a Reorder.
	assert.Equal(t, []string{"Customer", "Item", "Order"}, set.Names())
	assert.Equal(t, []string{"Order", "Item", "Customer"}, namesOf(set.InOrder()))

	set.Reorder([]string{"Item", "Customer", "Order"})
	assert.Equal(t, []string{"Item", "Customer", "Order"}, namesOf(set.InOrder()))
}

func TestSchemaSetReorderKeepsLeftovers(t *testing.T) {
	set := NewSchemaSet()
	set.Add(NewDefinition("A"))
	set.Add(NewDefinition("B"))
	set.Add(NewDefinition("C"))

	set.Reorder([]string{"C", "Ghost", "C"})
	assert.Equal(t, []string{"C", "A", "B"}, namesOf(set.InOrder()))
	assert.Equal(t, 3, set.Len())
}

func TestSchemaSetAddReplaces(t *testing.T) {
	set := NewSchemaSet()
	set.Add(NewDefinition("A"))

	replacement := NewDefinition("A")
	replacement.Deprecated = "v2"
	set.Add(replacement)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, "v2", set.Lookup("A").Deprecated)
}

func TestDefinitionFieldOrder(t *testing.T) {
	def := NewDefinition("Order")
	def.AddField(&FieldDefinition{Name: "b"})
	def.AddField(&FieldDefinition{Name: "a"})
	def.AddField(&FieldDefinition{Name: "b", Type: "int"})

	assert.Equal(t, []string{"b", "a"}, def.FieldNames())
	assert.Equal(t, "int", def.Field("b").Type)
	assert.True(t, def.HasField("a"))
	assert.False(t, def.HasField("c"))
}

func TestDefinitionLeafName(t *testing.T) {
	assert.Equal(t, "Invoice", NewDefinition("Billing/Invoice").LeafName())
	assert.Equal(t, "Order", NewDefinition("Order").LeafName())
}
