package dto

// FieldDefinition is one declared field of a DTO. It is created from the raw
// parsed config map, mutated in place through the completion phases, and
// frozen once handed to the emission stage.
type FieldDefinition struct {
	// Name is the camelCase field identifier.
	Name string
	// Type is the raw declared type string.
	Type string

	// Required reports whether the field must be present. Defaults to false.
	Required bool
	// Nullable is derived: a field is nullable unless explicitly required.
	// This derivation is the single source of truth for nullability.
	Nullable bool
	// DefaultValue is the declared default, when HasDefault is set.
	DefaultValue any
	// HasDefault distinguishes an explicit null default from no default.
	HasDefault bool

	// Collection configuration.
	Collection     bool
	CollectionType string
	Associative    bool
	Key            string
	Singular       string

	// Dto is the referenced DTO's logical name when the field is (or holds
	// elements of) a DTO reference.
	Dto string

	// Derived classification flags.
	IsClass     bool
	IsArray     bool
	Enum        bool
	EnumBacking string
	Serialize   string
	Factory     string

	// TypeHint is the emitted type annotation, including nullability variants.
	TypeHint string
	// DocType is the documentation-only annotation; it keeps the full
	// union/array precision the emitted hint may have degraded away.
	DocType string
	// SingularType is the element type for array-shaped fields.
	SingularType string
	// SingularNullable marks an "array of (T or null)" element type. This is
	// distinct from a nullable array of T and must never be conflated with it.
	SingularNullable bool

	// Accessor is the method-name stem derived once from Name.
	Accessor string
	// AdderAccessor is the per-element method-name stem derived from Singular.
	AdderAccessor string

	// External-name aliasing and value-transform hooks.
	MapFrom       string
	MapTo         string
	TransformFrom string
	TransformTo   string

	// Validation constraints (documentation/validator keys; excluded from the
	// minimized metadata projection).
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
	Pattern   string

	// Phase is the field's position in the completion pipeline.
	Phase Phase
}

// Frozen reports whether the field finished the completion pipeline.
func (f *FieldDefinition) Frozen() bool {
	return f.Phase == PhaseFrozen
}
