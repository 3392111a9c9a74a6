// Package typing implements type-string classification and resolution for the
// DTO schema DSL.
//
// A type string is a tagged string, not a parsed AST: a trailing "[]" marks an
// array or collection, "|" separates union members, a leading "\" marks a
// fully-qualified class reference, a leading "?" marks nullability, and a bare
// identifier is either a scalar keyword or a PascalCase DTO reference.
// Exactly one top-level classification applies per type string.
//
// Class references cannot be introspected from a host runtime the way the
// schema authors' classes could be, so all class knowledge (existence,
// enum backing, serialization capability, mutability) is supplied explicitly
// through a ClassRegistry. There is no ambient global state.
package typing
