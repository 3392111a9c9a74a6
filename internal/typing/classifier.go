package typing

import (
	"regexp"
	"strings"

	"dto-generator/internal/common"
	"dto-generator/internal/inflect"
)

// Kind is the top-level classification of a type string.
type Kind int

const (
	KindUnknown Kind = iota
	KindScalar
	KindArray
	KindDtoReference
	KindClassReference
	KindUnion

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindDtoReference:
		return "dto-reference"
	case KindClassReference:
		return "class-reference"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// scalarTypes is the scalar keyword whitelist.
var scalarTypes = map[string]struct{}{
	"int":      {},
	"float":    {},
	"string":   {},
	"bool":     {},
	"callable": {},
	"iterable": {},
	"object":   {},
}

var (
	pascalSegment = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	camelIdent    = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
)

// Classifier answers structural questions about raw type strings.
// All predicates are pure; normal inputs never cause errors.
type Classifier struct {
	registry     *ClassRegistry
	extraScalars map[string]struct{}
}

// NewClassifier creates a classifier backed by the given class registry.
// extraScalars extends the scalar whitelist for every IsScalar call.
func NewClassifier(registry *ClassRegistry, extraScalars ...string) *Classifier {
	extras := make(map[string]struct{}, len(extraScalars))
	for _, s := range extraScalars {
		extras[s] = struct{}{}
	}

	if registry == nil {
		registry = NewClassRegistry()
	}

	return &Classifier{registry: registry, extraScalars: extras}
}

// Registry returns the class registry the classifier consults.
func (c *Classifier) Registry() *ClassRegistry {
	return c.registry
}

// IsScalar reports whether every "|"-separated member of typ is in the scalar
// whitelist, after stripping a single trailing "[]" when at most one member
// carries it. A union mixing an array-suffixed member with other members
// degrades: it is not scalar, and the caller must treat it as plain "array".
func (c *Classifier) IsScalar(typ string, extraAllowed ...string) bool {
	members := splitUnion(typ)
	if common.IsEmpty(members) {
		return false
	}

	arrayMembers := 0

	for _, m := range members {
		m = strings.TrimPrefix(m, "?")
		if strings.HasSuffix(m, "[]") {
			arrayMembers++
			m = strings.TrimSuffix(m, "[]")
		}

		if !c.isScalarWord(m, extraAllowed) {
			return false
		}
	}

	if arrayMembers > 1 {
		return false
	}

	if arrayMembers == 1 && common.IsMultiple(members) {
		return false
	}

	return true
}

func (c *Classifier) isScalarWord(word string, extraAllowed []string) bool {
	if _, ok := scalarTypes[word]; ok {
		return true
	}

	if _, ok := c.extraScalars[word]; ok {
		return true
	}

	for _, e := range extraAllowed {
		if word == e {
			return true
		}
	}

	return false
}

// IsArrayType reports whether typ is the literal "array", or "T[]"/"?T[]"
// where T is a scalar, a valid DTO name, or a known class reference. The "?"
// prefix marks a nullable element type.
func (c *Classifier) IsArrayType(typ string) bool {
	if typ == "array" {
		return true
	}

	return c.isTypedArray(typ, true)
}

// IsCollectionType is the same structural test as IsArrayType but rejects the
// nullable-element prefix: collections require a non-optional element type.
func (c *Classifier) IsCollectionType(typ string) bool {
	return c.isTypedArray(typ, false)
}

func (c *Classifier) isTypedArray(typ string, allowNullableElem bool) bool {
	if !strings.HasSuffix(typ, "[]") {
		return false
	}

	elem := strings.TrimSuffix(typ, "[]")
	if strings.HasPrefix(elem, "?") {
		if !allowNullableElem {
			return false
		}

		elem = strings.TrimPrefix(elem, "?")
	}

	if elem == "" || strings.Contains(elem, "|") || strings.HasSuffix(elem, "[]") {
		return false
	}

	return c.isScalarWord(elem, nil) || IsValidDtoName(elem) || c.IsClassReference(elem)
}

// IsClassReference reports whether typ begins with a backslash and resolves to
// a class known to the registry.
func (c *Classifier) IsClassReference(typ string) bool {
	if !strings.HasPrefix(typ, `\`) {
		return false
	}

	return c.registry.Exists(typ)
}

// IsUnion reports whether typ contains more than one "|"-separated member.
func (c *Classifier) IsUnion(typ string) bool {
	return common.IsMultiple(splitUnion(typ))
}

// IsValidType reports whether typ falls into any recognized classification.
func (c *Classifier) IsValidType(typ string) bool {
	return c.Classify(typ) != KindUnknown
}

// Classify assigns exactly one top-level kind to a type string.
//
// Order matters: DTO-reference and class-reference checks run before the
// generic array and union checks, because "Item[]" is simultaneously
// array-shaped and DTO-element-shaped. The caller disambiguates array
// elements by checking the stripped inner type.
func (c *Classifier) Classify(typ string) Kind {
	t := typ
	if !strings.HasSuffix(t, "[]") {
		t = strings.TrimPrefix(t, "?")
	}

	switch {
	case t == "":
		return KindUnknown
	case c.IsUnion(t):
		return c.classifyUnion(t)
	case c.IsClassReference(t):
		return KindClassReference
	case IsValidDtoName(t):
		return KindDtoReference
	case c.IsArrayType(t):
		return KindArray
	case c.isScalarWord(t, nil):
		return KindScalar
	default:
		return KindUnknown
	}
}

// classifyUnion classifies a multi-member type string. Every member must be
// individually valid; a pure scalar union is scalar, anything else is a union
// (which the resolver may later degrade to "array" in the emitted hint).
func (c *Classifier) classifyUnion(typ string) Kind {
	for _, m := range splitUnion(typ) {
		m = strings.TrimPrefix(m, "?")

		inner := m
		if strings.HasSuffix(inner, "[]") {
			inner = strings.TrimSuffix(inner, "[]")
		}

		valid := c.isScalarWord(inner, nil) || IsValidDtoName(inner) || c.IsClassReference(inner)
		if !valid {
			return KindUnknown
		}
	}

	if c.IsScalar(typ) {
		return KindScalar
	}

	return KindUnion
}

// IsValidDtoName reports whether name is a well-formed DTO reference:
// "/"-separated segments, each PascalCase, each surviving the
// underscore-then-camelize round trip. The round trip guards against names
// like "myDto" or "My_Dto" which would silently collide after class-name
// canonicalization.
func IsValidDtoName(name string) bool {
	if name == "" {
		return false
	}

	for _, segment := range strings.Split(name, "/") {
		if !pascalSegment.MatchString(segment) {
			return false
		}

		if inflect.Camelize(inflect.Underscore(segment)) != segment {
			return false
		}
	}

	return true
}

// IsValidFieldName reports whether name is a well-formed camelCase field name.
func IsValidFieldName(name string) bool {
	return camelIdent.MatchString(name)
}

func splitUnion(typ string) []string {
	if typ == "" {
		return nil
	}

	members := strings.Split(typ, "|")
	for i := range members {
		members[i] = strings.TrimSpace(members[i])
	}

	return members
}
