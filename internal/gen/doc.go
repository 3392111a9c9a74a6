// Package gen emits code from a resolved schema set.
//
// Four backends consume the same frozen definitions: Go accessor types
// (built with jennifer), TypeScript interfaces (text/template), a JSON
// Schema document, and a minimized JSON metadata projection. Backends are
// strictly downstream of resolution: they never mutate definitions and never
// re-derive names the completor already stored.
package gen
