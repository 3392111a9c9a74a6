package dto

// Phase tracks a field definition's progress through the completion pipeline.
// Phases are strictly sequential; a field never moves backward.
type Phase int

const (
	PhaseRawDeclared Phase = iota
	PhaseDefaultsApplied
	PhaseTypeResolved
	PhaseTypeHintsCompleted
	PhaseCollectionCompleted
	PhaseArrayCompleted
	PhaseNullableCompleted
	PhaseSingularCompleted
	PhaseFrozen

	// PhaseTotal is the number of phases defined.
	PhaseTotal = int(iota)
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRawDeclared:
		return "raw_declared"
	case PhaseDefaultsApplied:
		return "defaults_applied"
	case PhaseTypeResolved:
		return "type_resolved"
	case PhaseTypeHintsCompleted:
		return "type_hints_completed"
	case PhaseCollectionCompleted:
		return "collection_completed"
	case PhaseArrayCompleted:
		return "array_completed"
	case PhaseNullableCompleted:
		return "nullable_completed"
	case PhaseSingularCompleted:
		return "singular_completed"
	case PhaseFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}
