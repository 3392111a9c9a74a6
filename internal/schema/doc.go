// Package schema loads declarative DTO schema files into the normalized
// nested-map form the resolution pipeline consumes.
//
// Every supported serialization format parses into the same Source shape:
//
//	DtoName:
//	  extends: Base
//	  immutable: true
//	  fields:
//	    fieldName: <type string> | <full field spec map>
//
// Field declaration order is preserved from the document because it drives
// generated constructor and property order. Declarations of the same DTO
// across multiple files are merged, with per-field type-conflict detection:
// silent last-write-wins on a field type is a fatal error, never a merge.
package schema
