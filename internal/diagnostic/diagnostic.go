package diagnostic

import (
	"fmt"
	"strings"
)

// Code identifies a category of configuration error.
type Code string

const (
	// CodeNameFormat - DTO or field name fails identifier-shape rules.
	CodeNameFormat Code = "name_format"
	// CodeTypeInvalid - field type string is not classifiable into any recognized category.
	CodeTypeInvalid Code = "type_invalid"
	// CodeCollectionConfig - collection flag without array-shaped type, singular
	// collision, or auto-singularization failure.
	CodeCollectionConfig Code = "collection_config"
	// CodeMergeConflict - same field declared with different types across merged files.
	CodeMergeConflict Code = "merge_conflict"
	// CodeInheritance - extends target missing, not inheritable, or mutability mismatch.
	CodeInheritance Code = "inheritance"
	// CodeCycle - dependency graph contains a cycle.
	CodeCycle Code = "cycle"
	// CodeMethodCollision - two fields would generate identical accessor names.
	CodeMethodCollision Code = "method_collision"
)

// Error is a single fatal configuration error.
type Error struct {
	// Code is the error category.
	Code Code
	// Dto is the name of the offending DTO definition.
	Dto string
	// Field is the offending field name, if applicable.
	Field string
	// Message is the human-readable description.
	Message string
	// Hint tells the user what to change.
	Hint string
}

// New creates a diagnostic error.
func New(code Code, dtoName, field, message, hint string) *Error {
	return &Error{Code: code, Dto: dtoName, Field: field, Message: message, Hint: hint}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(string(e.Code))

	if e.Dto != "" {
		fmt.Fprintf(&sb, ": dto %q", e.Dto)
	}

	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}

	sb.WriteString(": ")
	sb.WriteString(e.Message)

	if e.Hint != "" {
		fmt.Fprintf(&sb, " (hint: %s)", e.Hint)
	}

	return sb.String()
}

// Diagnostics accumulates errors from one pipeline phase.
type Diagnostics struct {
	Errors []*Error
}

// Add appends a diagnostic error.
func (d *Diagnostics) Add(code Code, dtoName, field, message, hint string) {
	d.Errors = append(d.Errors, New(code, dtoName, field, message, hint))
}

// Append appends an already-constructed error, ignoring nil.
func (d *Diagnostics) Append(err *Error) {
	if err != nil {
		d.Errors = append(d.Errors, err)
	}
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other != nil {
		d.Errors = append(d.Errors, other.Errors...)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Err returns a combined error from all diagnostics, or nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.Error())
	}

	return fmt.Errorf("schema resolution failed:\n%s", strings.Join(parts, "\n"))
}
