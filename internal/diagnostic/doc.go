// Package diagnostic provides structured, fatal configuration errors for the
// DTO schema resolution pipeline.
//
// Every validator and resolver reports through this package so that each
// failure carries the offending DTO name, the field (when applicable), and a
// human-actionable hint describing what to change. All diagnostics are
// deterministic configuration errors: there is no retry semantics, and a
// single error anywhere aborts the whole generation run.
package diagnostic
