package typing

import "strings"

// Serialization strategies detected for class references.
const (
	// SerializeFromArrayToArray - the class supports a full fromArray/toArray round trip.
	SerializeFromArrayToArray = "FromArrayToArray"
	// SerializeArray - the class only exposes a toArray-equivalent method.
	SerializeArray = "array"
)

// Enum backing kinds.
const (
	// EnumBackingUnit - an enum with no backing scalar.
	EnumBackingUnit = "unit"
	// EnumBackingInt - an int-backed enum.
	EnumBackingInt = "int"
	// EnumBackingString - a string-backed enum.
	EnumBackingString = "string"
)

// ClassInfo describes one externally defined class or interface that schemas
// may reference. It replaces host-runtime reflection with declared facts.
type ClassInfo struct {
	// Name is the fully-qualified class name without the leading backslash,
	// e.g. "App\Money".
	Name string
	// Immutable reports whether instances of the class are immutable.
	Immutable bool
	// Extendable reports whether the class has a recognized inheritable shape.
	Extendable bool
	// Enum reports whether the class is an enum type.
	Enum bool
	// EnumBacking is "int" or "string" for backed enums, empty for unit enums.
	EnumBacking string
	// RoundTrip reports whether the class implements the full
	// fromArray/toArray round-trip interface.
	RoundTrip bool
	// JSONSafe reports whether the class serializes safely as-is, needing no
	// transform.
	JSONSafe bool
	// HasToArray reports whether the class exposes a toArray-equivalent method.
	HasToArray bool
}

// ClassRegistry resolves class references against declared class information.
// It is explicit constructor input everywhere it is needed; nothing in the
// pipeline consults process-global state.
type ClassRegistry struct {
	classes map[string]ClassInfo
}

// NewClassRegistry creates a registry from the given class declarations.
func NewClassRegistry(classes ...ClassInfo) *ClassRegistry {
	r := &ClassRegistry{classes: make(map[string]ClassInfo, len(classes))}
	for _, c := range classes {
		r.Register(c)
	}

	return r
}

// Register adds or replaces a class declaration.
func (r *ClassRegistry) Register(info ClassInfo) {
	r.classes[normalizeClassName(info.Name)] = info
}

// Lookup returns the class info for a (possibly backslash-prefixed) name.
func (r *ClassRegistry) Lookup(name string) (ClassInfo, bool) {
	info, ok := r.classes[normalizeClassName(name)]
	return info, ok
}

// Exists reports whether the class is known to the registry.
func (r *ClassRegistry) Exists(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func normalizeClassName(name string) string {
	return strings.TrimPrefix(name, `\`)
}
