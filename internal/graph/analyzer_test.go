package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
)

func defWithRefs(name string, refTypes ...string) *dto.Definition {
	def := dto.NewDefinition(name)

	for i, typ := range refTypes {
		def.AddField(&dto.FieldDefinition{
			Name: "f" + string(rune('a'+i)),
			Type: typ,
		})
	}

	return def
}

func makeSet(defs ...*dto.Definition) *dto.SchemaSet {
	set := dto.NewSchemaSet()
	for _, def := range defs {
		set.Add(def)
	}

	return set
}

func TestBuildExtractsReferences(t *testing.T) {
	order := defWithRefs("Order", "Item[]", "int")
	order.Extends = "Base"

	set := makeSet(
		order,
		defWithRefs("Item", "string"),
		defWithRefs("Base"),
	)

	g := NewAnalyzer("").Build(set)

	assert.Equal(t, []string{"Base", "Item"}, g["Order"])
	assert.Empty(t, g["Item"])
}

func TestBuildResolvesUnionMembersAndClassRefs(t *testing.T) {
	set := makeSet(
		defWithRefs("Event", "Payload|string", `\App\ItemDto`),
		defWithRefs("Payload", "string"),
		defWithRefs("Item", "string"),
	)

	g := NewAnalyzer("Dto").Build(set)

	assert.Equal(t, []string{"Item", "Payload"}, g["Event"])
}

func TestAnalyzeReportsCyclePath(t *testing.T) {
	set := makeSet(
		defWithRefs("A", "B"),
		defWithRefs("B", "C"),
		defWithRefs("C", "A"),
	)

	_, diags := NewAnalyzer("").Analyze(set)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeCycle, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "A -> B -> C -> A")
}

func TestAnalyzeDiamondIsNotACycle(t *testing.T) {
	set := makeSet(
		defWithRefs("Top", "Left", "Right"),
		defWithRefs("Left", "Bottom"),
		defWithRefs("Right", "Bottom"),
		defWithRefs("Bottom", "string"),
	)

	_, diags := NewAnalyzer("").Analyze(set)
	assert.False(t, diags.HasErrors())
}

// Nullability does not excuse a cycle: a tree node referencing its own type
// through a nullable field is still rejected.
func TestAnalyzeNullableSelfReferenceStillCycles(t *testing.T) {
	for _, typ := range []string{"?Category", "?Category[]"} {
		set := makeSet(defWithRefs("Category", typ))

		_, diags := NewAnalyzer("").Analyze(set)
		require.Len(t, diags.Errors, 1, "type %s", typ)
		assert.Equal(t, diagnostic.CodeCycle, diags.Errors[0].Code)
		assert.Contains(t, diags.Errors[0].Message, "Category -> Category")
	}
}

func TestTopoOrderDependenciesFirst(t *testing.T) {
	g := Graph{
		"Order": {"Customer", "Item"},
		"Item":  {"Unit"},
		"Unit":  {},

		"Customer": {},
	}

	order, ok := TopoOrder(g)
	require.True(t, ok)

	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}

	assert.Less(t, pos["Item"], pos["Order"])
	assert.Less(t, pos["Customer"], pos["Order"])
	assert.Less(t, pos["Unit"], pos["Item"])
}

// Ties break by name, so the order is stable across runs.
func TestTopoOrderDeterministic(t *testing.T) {
	g := Graph{"B": {}, "A": {}, "C": {}, "Z": {"A", "B", "C"}}

	order, ok := TopoOrder(g)
	require.True(t, ok)
	assert.Equal(t, "A B C Z", strings.Join(order, " "))
}

func TestTopoOrderReportsCycle(t *testing.T) {
	g := Graph{"A": {"B"}, "B": {"A"}}

	order, ok := TopoOrder(g)
	assert.False(t, ok)
	assert.Empty(t, order)
}
