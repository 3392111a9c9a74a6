package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolver() *Resolver {
	registry := NewClassRegistry(
		ClassInfo{Name: `App\Money`, HasToArray: true},
		ClassInfo{Name: `App\Payload`, RoundTrip: true, HasToArray: true},
		ClassInfo{Name: `App\Uuid`, JSONSafe: true, HasToArray: true},
		ClassInfo{Name: `App\Status`, Enum: true, EnumBacking: EnumBackingString},
		ClassInfo{Name: `App\Kind`, Enum: true},
	)

	return NewResolver(NewClassifier(registry))
}

func TestTypeHint(t *testing.T) {
	r := testResolver()

	cases := map[string]string{
		"string":      "string",
		"?string":     "string",
		"Item":        "Item",
		"?Item":       "Item",
		`\App\Money`:  `\App\Money`,
		"array":       "array",
		"Item[]":      "array",
		"?Item[]":     "array",
		"int|string":  "int|string",
		"":            "",
		"bogus-type!": "",
	}

	for typ, want := range cases {
		if got := r.TypeHint(typ); got != want {
			t.Errorf("TypeHint(%q) = %q, want %q", typ, got, want)
		}
	}
}

// A union with any array-suffixed member cannot be expressed natively, so the
// hint collapses to plain "array". The full union survives only in the
// documentation annotation.
func TestTypeHintUnionWithArrayMemberDegrades(t *testing.T) {
	r := testResolver()

	assert.Equal(t, "array", r.TypeHint("int[]|string"))
	assert.Equal(t, "array", r.TypeHint("string|?int[]"))
	assert.Equal(t, "int|string", r.TypeHint("int|string"))
}

func TestSingularType(t *testing.T) {
	r := testResolver()

	cases := map[string]string{
		"Item[]":       "Item",
		"?Item[]":      "Item",
		"string[]":     "string",
		`\App\Money[]`: `\App\Money`,
		"array":        "",
		"Item":         "",
		"int[][]":      "",
		"Unknown_X[]":  "",
	}

	for typ, want := range cases {
		if got := r.SingularType(typ); got != want {
			t.Errorf("SingularType(%q) = %q, want %q", typ, got, want)
		}
	}
}

func TestCollectionTypePrecedence(t *testing.T) {
	r := testResolver()

	assert.Equal(t, "Doctrine\\Collection", r.CollectionType("Doctrine\\Collection", true, "array"))
	assert.Equal(t, "list", r.CollectionType("", true, "list"))
	assert.Equal(t, "array", r.CollectionType("", true, ""))
	assert.Equal(t, "array", r.CollectionType("", false, "list"))
}

func TestEnumBackingKind(t *testing.T) {
	r := testResolver()

	assert.Equal(t, EnumBackingString, r.EnumBackingKind(`\App\Status`))
	assert.Equal(t, EnumBackingUnit, r.EnumBackingKind(`\App\Kind`))
	assert.Equal(t, "", r.EnumBackingKind(`\App\Money`))
	assert.Equal(t, "", r.EnumBackingKind(`\App\Missing`))
}

// Round-trip capability wins over JSON-safe passthrough, which wins over a
// one-directional toArray method.
func TestDetectAutoSerializePriority(t *testing.T) {
	r := testResolver()

	assert.Equal(t, SerializeFromArrayToArray, r.DetectAutoSerialize(`\App\Payload`))
	assert.Equal(t, "", r.DetectAutoSerialize(`\App\Uuid`))
	assert.Equal(t, SerializeArray, r.DetectAutoSerialize(`\App\Money`))
	assert.Equal(t, "", r.DetectAutoSerialize(`\App\Missing`))
}
