// Package testutil provides shared test helper utilities.
package testutil

// Ptr returns a pointer to v. It is a generic replacement for the various
// typed pointer helpers (ptrInt, ptrFloat64, etc.) that otherwise get
// duplicated across test files.
func Ptr[T any](v T) *T { return &v }
