// Package dsl provides constructors for llfschema descriptors.
//
// Overview
//   - Primitives: Text(), Integer(), Real() produce strict TypeTag descriptors.
//   - Literal(v): match one scalar exactly (e.g. a GeoJSON "type" tag).
//   - Array(item): a sequence whose every element matches item.
//   - Object(): declare a mapping with Field(...).Required()/Optional()/Default(v), then MustBuild()/Build().
//   - Custom(name, v)/Func(name, fn): wrap a validator as a leaf descriptor.
//
// Example
//
//	header := dsl.Object().
//	    Field("status", dsl.Text()).
//	    Field("areas", dsl.Array(dsl.Text())).
//	    Field("note", dsl.Text()).Optional().
//	    Field("kind", dsl.Text()).Default("area").
//	    MustBuild()
//
// Fields are required unless marked otherwise. Undeclared input keys are
// ignored unless the caller validates with llfschema.UnknownStrict.
package dsl
