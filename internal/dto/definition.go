package dto

// Definition is one named DTO. Field insertion order is significant: it
// drives generated constructor and property order.
type Definition struct {
	// Name is the logical DTO name; "/" separates nested namespace segments.
	Name string

	fields map[string]*FieldDefinition
	order  []string

	// Immutable DTOs only extend immutable bases, and vice versa.
	Immutable bool
	// Extends names the parent DTO or external class, empty for none.
	Extends string
	// ExtendsDto is set by extends resolution when the target is a sibling DTO.
	ExtendsDto string
	// ExtendsClass is set by extends resolution when the target is an
	// external registry class.
	ExtendsClass string
	// Traits lists mixin class references.
	Traits []string

	// Namespace and ClassName are the final placement computed by the builder.
	Namespace string
	ClassName string

	// Deprecated carries the deprecation message, empty for none.
	Deprecated string

	// SourceFiles lists the config files that contributed to this definition.
	SourceFiles []string

	// ArrayShape is the documentation-only recursive structural annotation.
	ArrayShape string
	// Meta is the minimized per-field projection handed to emission.
	Meta []FieldMeta
}

// NewDefinition creates an empty definition.
func NewDefinition(name string) *Definition {
	return &Definition{
		Name:   name,
		fields: make(map[string]*FieldDefinition),
	}
}

// AddField appends a field, keeping insertion order. Re-adding a name
// replaces the field in place without disturbing the order.
func (d *Definition) AddField(f *FieldDefinition) {
	if _, ok := d.fields[f.Name]; !ok {
		d.order = append(d.order, f.Name)
	}

	d.fields[f.Name] = f
}

// Field returns the named field, or nil.
func (d *Definition) Field(name string) *FieldDefinition {
	return d.fields[name]
}

// HasField reports whether the named field exists.
func (d *Definition) HasField(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// FieldNames returns field names in declaration order.
func (d *Definition) FieldNames() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)

	return names
}

// Fields returns the fields in declaration order.
func (d *Definition) Fields() []*FieldDefinition {
	fields := make([]*FieldDefinition, 0, len(d.order))
	for _, name := range d.order {
		fields = append(fields, d.fields[name])
	}

	return fields
}

// LeafName returns the last "/"-separated segment of the DTO name.
func (d *Definition) LeafName() string {
	name := d.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}

	return name
}
