package llf

import (
	"context"
	"io"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/decode"
)

// ReadFile decodes the file at path (JSON, or YAML by extension) and
// validates it against the standard schema.
func ReadFile(ctx context.Context, path string, opts ...llfschema.Options) (*File, error) {
	raw, err := decode.File(path)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, raw, opts...)
}

// Read decodes one document from r and validates it.
func Read(ctx context.Context, r io.Reader, format decode.Format, opts ...llfschema.Options) (*File, error) {
	raw, err := decode.Reader(r, format)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, raw, opts...)
}
