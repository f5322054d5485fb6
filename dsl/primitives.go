package dsl

import (
	"context"

	"github.com/metno/llfschema"
)

// Text matches a string.
func Text() llfschema.Descriptor { return llfschema.TypeTag{Kind: llfschema.KindText} }

// Integer matches an integer; reals are rejected even when integral.
func Integer() llfschema.Descriptor { return llfschema.TypeTag{Kind: llfschema.KindInteger} }

// Real matches a real number; integers are rejected.
func Real() llfschema.Descriptor { return llfschema.TypeTag{Kind: llfschema.KindReal} }

// Literal matches v exactly.
func Literal(v any) llfschema.Descriptor { return llfschema.Literal{Value: v} }

// Array returns a sequence descriptor applying item to every element.
func Array(item llfschema.Descriptor) llfschema.Descriptor { return llfschema.Sequence{Item: item} }

// Custom wraps a validator as a leaf descriptor.
func Custom(name string, v llfschema.Validator) llfschema.Descriptor {
	return llfschema.Custom{Name: name, Validator: v}
}

// Func wraps a function as a leaf descriptor.
func Func(name string, fn func(ctx context.Context, v any) (any, error)) llfschema.Descriptor {
	return llfschema.Custom{Name: name, Validator: llfschema.ValidatorFunc(fn)}
}
