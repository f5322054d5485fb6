package dsl

import (
	"errors"
	"fmt"

	"github.com/metno/llfschema"
)

// ObjectBuilder collects mapping fields in declaration order.
type ObjectBuilder struct {
	fields []llfschema.Field
	errs   []error
}

// FieldStep refines the most recently declared field.
type FieldStep struct {
	b   *ObjectBuilder
	idx int
}

// Object creates a new mapping builder.
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field registers a required field.
func (b *ObjectBuilder) Field(name string, d llfschema.Descriptor) *FieldStep {
	if d == nil {
		b.errs = append(b.errs, fmt.Errorf("dsl: field %q has nil descriptor", name))
	}
	b.fields = append(b.fields, llfschema.Field{Name: name, Desc: d})
	return &FieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required (default) and returns the builder.
func (f *FieldStep) Required() *ObjectBuilder {
	f.b.fields[f.idx].Optional = false
	f.b.fields[f.idx].Fallback = nil
	return f.b
}

// Optional marks the field as optional without a fallback: when absent it is
// left out of the result.
func (f *FieldStep) Optional() *ObjectBuilder {
	f.b.fields[f.idx].Optional = true
	f.b.fields[f.idx].Fallback = nil
	return f.b
}

// Default marks the field as optional with a fallback raw value, which is
// validated against the field descriptor whenever the field is absent.
func (f *FieldStep) Default(v any) *ObjectBuilder {
	if v == nil {
		f.b.errs = append(f.b.errs, fmt.Errorf("dsl: field %q has nil default; use Optional()", f.b.fields[f.idx].Name))
	}
	f.b.fields[f.idx].Optional = true
	f.b.fields[f.idx].Fallback = v
	return f.b
}

// Field registers the next required field.
func (f *FieldStep) Field(name string, d llfschema.Descriptor) *FieldStep { return f.b.Field(name, d) }

// Build finishes the builder; see ObjectBuilder.Build.
func (f *FieldStep) Build() (*llfschema.Mapping, error) { return f.b.Build() }

// MustBuild finishes the builder and panics on error.
func (f *FieldStep) MustBuild() *llfschema.Mapping { return f.b.MustBuild() }

// Build constructs the immutable Mapping.
func (b *ObjectBuilder) Build() (*llfschema.Mapping, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return llfschema.NewMapping(b.fields...)
}

// MustBuild is Build that panics on error.
func (b *ObjectBuilder) MustBuild() *llfschema.Mapping {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
