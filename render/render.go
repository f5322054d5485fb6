// Package render holds output collaborators that walk a validated LLF file.
package render

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/metno/llfschema/llf"
)

// Renderer writes a validated file in some output format.
type Renderer interface {
	Render(w io.Writer, f *llf.File) error
}

// ExtendedDataPrefix prefixes flattened parameter names, matching the names
// Diana expects in KML ExtendedData.
const ExtendedDataPrefix = "met:info:llf:"

// YAML dumps the whole validated tree.
type YAML struct {
	Indent int // Defaults to 2.
}

func (r YAML) Render(w io.Writer, f *llf.File) error {
	enc := yaml.NewEncoder(w)
	indent := r.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	return enc.Close()
}

// Text writes one line per feature: validity window, parameter group, ring
// count and the flattened parameters.
type Text struct{}

func (Text) Render(w io.Writer, f *llf.File) error {
	for i, ts := range f.Timesteps() {
		from, to := ts.Valid()
		for j, feat := range ts.Forecast().Features() {
			props := feat.Properties()
			if _, err := fmt.Fprintf(w, "timestep %d feature %d %s..%s %s rings=%d",
				i, j, from.Format(time.RFC3339), to.Format(time.RFC3339), props.ParameterGroup(), len(feat.Rings())); err != nil {
				return err
			}
			for _, dv := range props.Flatten(ExtendedDataPrefix) {
				if _, err := fmt.Fprintf(w, " %s=%s", dv.Name, dv.Value); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// ByName returns the renderer for a format name, or nil for "none".
func ByName(name string) (Renderer, error) {
	switch name {
	case "yaml":
		return YAML{}, nil
	case "text":
		return Text{}, nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("render: unknown format %q", name)
	}
}
