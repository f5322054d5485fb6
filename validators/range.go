package validators

import (
	"context"
	"fmt"

	"github.com/metno/llfschema"
)

type intRange struct{ min, max int64 }

func (r intRange) Validate(_ context.Context, v any) (any, error) {
	i, ok := llfschema.AsInt(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected integer, got %T", ErrWrongType, v)
	}
	if i < r.min || i > r.max {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, i, r.min, r.max)
	}
	return int(i), nil
}

// IntRange accepts integers in [min, max] and returns them as int.
func IntRange(min, max int) llfschema.Custom {
	return llfschema.Custom{
		Name:      fmt.Sprintf("intrange(%d,%d)", min, max),
		Validator: intRange{min: int64(min), max: int64(max)},
	}
}

type oneOf struct{ choices []any }

func (o oneOf) Validate(_ context.Context, v any) (any, error) {
	for _, c := range o.choices {
		if llfschema.Equal(c, v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotMember, v)
}

// OneOf accepts values equal to one of choices.
func OneOf(choices ...any) llfschema.Custom {
	cs := make([]any, len(choices))
	copy(cs, choices)
	return llfschema.Custom{Name: fmt.Sprintf("oneof%v", cs), Validator: oneOf{choices: cs}}
}

// OneOfText is OneOf for string choices.
func OneOfText(choices ...string) llfschema.Custom {
	cs := make([]any, len(choices))
	for i, c := range choices {
		cs[i] = c
	}
	return OneOf(cs...)
}
