// Package validators implements the custom leaf validators used by LLF
// schemas. Every constructor returns an llfschema.Custom descriptor, so the
// result can be placed directly into a dsl.Object field or dsl.Array.
//
// Validators report plain errors wrapping one of the sentinel errors below;
// the engine turns them into custom_failed issues and keeps the reason as the
// issue's Cause. AnyEntries is the exception: it validates nested values with
// the engine and returns located Issues.
package validators

import "errors"

var (
	ErrWrongType  = errors.New("wrong type")
	ErrFormat     = errors.New("does not match format")
	ErrOutOfRange = errors.New("out of range")
	ErrNotMember  = errors.New("not one of the allowed values")
)
