// Package llfschema provides:
//
// - A small declarative descriptor model (Literal, TypeTag, Mapping, Sequence, Custom)
// - A recursive validation engine that walks a decoded JSON-like tree against a descriptor
// - A stable error model via Issues (JSON Pointer path, code, message)
// - The Validator contract implemented by custom leaf validators
//
// Design policy:
// - Keep the engine and descriptor model in the root package; constructors live in dsl/,
//   concrete validators in validators/, the LLF forecast schema in llf/.
// - Decoding (decode/) and rendering (render/) are collaborators; the engine does no I/O.
// - Descriptor trees are built once and never mutated; every Validate call returns a fresh tree.
//
// Typical usage:
//
//	d := dsl.Object().
//	    Field("name", dsl.Text()).Required().
//	    Field("level", validators.IntRange(0, 125)).Required().
//	    MustBuild()
//	v, err := llfschema.Validate(ctx, raw, d)
//	if iss, ok := llfschema.AsIssues(err); ok {
//	    fmt.Println(iss[0].Path, iss[0].Code)
//	}
package llfschema
