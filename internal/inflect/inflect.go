// Package inflect provides the naming functions shared by field completion,
// validation, and code emission: case conversion, plural/singular inflection,
// and accessor-name derivation.
//
// Accessor names are derived exactly once, during field completion, and stored
// on the field definition. Validators and emitters read the stored value and
// never re-derive it, so collision detection and emission can never disagree.
package inflect

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.Und)

// Camelize converts an underscore_separated name into PascalCase.
func Camelize(s string) string {
	if s == "" {
		return ""
	}

	parts := strings.Split(s, "_")

	var sb strings.Builder

	for _, p := range parts {
		if p == "" {
			continue
		}

		sb.WriteString(titler.String(p))
	}

	return sb.String()
}

// Underscore converts a PascalCase or camelCase name into snake_case.
// Runs of capitals are kept together: "itemID" becomes "item_id".
func Underscore(s string) string {
	var sb strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && (prevLower || nextLower) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Singularize returns the singular form of a plural word.
// The result equals the input when no plural form is recognized; callers must
// treat that as a failure rather than guess.
func Singularize(s string) string {
	return inflection.Singular(s)
}

// Pluralize returns the plural form of a singular word.
func Pluralize(s string) string {
	return inflection.Plural(s)
}

// AccessorName derives the method-name stem for a field name. Names that
// differ only in casing collapse to the same stem ("itemId" and "itemID"
// both yield "ItemId"), which is what makes accessor collisions detectable
// before emission.
func AccessorName(fieldName string) string {
	return Camelize(Underscore(fieldName))
}

// UcFirst upper-cases the first rune of s.
func UcFirst(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
