package llfschema

import (
	"context"
	"fmt"
)

// Descriptor describes the expected shape of one position in a data tree.
// The set of implementations is closed: Literal, TypeTag, *Mapping, Sequence
// and Custom.
type Descriptor interface {
	descriptor()
}

// Kind is a primitive type accepted by TypeTag.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Literal matches one scalar value exactly.
type Literal struct{ Value any }

// TypeTag matches a primitive type without coercion.
type TypeTag struct{ Kind Kind }

// Sequence validates every element against Item.
type Sequence struct{ Item Descriptor }

// Custom delegates to a Validator.
type Custom struct {
	Name      string // Optional; used in diagnostics.
	Validator Validator
}

// Field is one declared entry of a Mapping.
type Field struct {
	Name     string
	Desc     Descriptor
	Optional bool
	// Fallback is a raw value validated against Desc when an optional field is
	// absent. A nil Fallback means the field is skipped.
	Fallback any
}

// Mapping validates a map by its declared fields. Construct it with
// NewMapping; the field set is fixed afterwards.
type Mapping struct {
	fields []Field
	index  map[string]int
}

func (Literal) descriptor()  {}
func (TypeTag) descriptor()  {}
func (Sequence) descriptor() {}
func (Custom) descriptor()   {}
func (*Mapping) descriptor() {}

// NewMapping builds a Mapping, rejecting duplicate or empty names and nil
// descriptors.
func NewMapping(fields ...Field) (*Mapping, error) {
	m := &Mapping{fields: make([]Field, 0, len(fields)), index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("llfschema: mapping field with empty name")
		}
		if f.Desc == nil {
			return nil, fmt.Errorf("llfschema: mapping field %q has no descriptor", f.Name)
		}
		if _, dup := m.index[f.Name]; dup {
			return nil, fmt.Errorf("llfschema: duplicate mapping field %q", f.Name)
		}
		m.index[f.Name] = len(m.fields)
		m.fields = append(m.fields, f)
	}
	return m, nil
}

// MustMapping is NewMapping that panics on error. Intended for schema
// definitions built at init time.
func MustMapping(fields ...Field) *Mapping {
	m, err := NewMapping(fields...)
	if err != nil {
		panic(err)
	}
	return m
}

// Fields returns a copy of the declared fields in declaration order.
func (m *Mapping) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Lookup returns the declared field with the given name.
func (m *Mapping) Lookup(name string) (Field, bool) {
	i, ok := m.index[name]
	if !ok {
		return Field{}, false
	}
	return m.fields[i], true
}

// Len returns the number of declared fields.
func (m *Mapping) Len() int { return len(m.fields) }

// Validator is the custom validator capability: it turns a raw value into a
// transformed value or fails. A returned Issues value is rebased below the
// validator's position; any other error is reported as CodeCustomFailed with
// the error kept as Cause.
type Validator interface {
	Validate(ctx context.Context, v any) (any, error)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, v any) (any, error)

func (f ValidatorFunc) Validate(ctx context.Context, v any) (any, error) { return f(ctx, v) }
