package llf

import (
	"fmt"
	"sort"
	"time"

	"github.com/metno/llfschema/validators"
)

// Element gives keyed access to a validated mapping. Elements are never
// modified after validation.
type Element struct {
	contents map[string]any
}

// Get returns the validated value of a field.
func (e *Element) Get(key string) (any, bool) {
	v, ok := e.contents[key]
	return v, ok
}

// Value returns the validated value of a field, or nil.
func (e *Element) Value(key string) any { return e.contents[key] }

// Keys returns the field names present in sorted order.
func (e *Element) Keys() []string {
	keys := make([]string, 0, len(e.contents))
	for k := range e.contents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Contents returns the validated mapping. Callers must not modify it.
func (e *Element) Contents() map[string]any { return e.contents }

// MarshalYAML renders the element as its contents.
func (e *Element) MarshalYAML() (any, error) { return e.contents, nil }

// Container is an Element that also supports indexed access into one
// sequence-valued field.
type Container struct {
	Element
	seqField string
}

func (c *Container) items() []any {
	items, _ := c.contents[c.seqField].([]any)
	return items
}

// Len returns the number of items in the indexed field.
func (c *Container) Len() int { return len(c.items()) }

// At returns the i-th item of the indexed field. It panics when i is out of
// range, like a slice index.
func (c *Container) At(i int) any {
	items := c.items()
	if i < 0 || i >= len(items) {
		panic(fmt.Sprintf("llf: index %d out of range [0:%d] on %q", i, len(items), c.seqField))
	}
	return items[i]
}

// IndexedField names the field that At and Len operate on.
func (c *Container) IndexedField() string { return c.seqField }

// File is a validated LLF file. Indexed access yields timesteps.
type File struct{ Container }

func newFile(c map[string]any) *File {
	return &File{Container{Element: Element{contents: c}, seqField: "timesteps"}}
}

// Header returns the validated header mapping.
func (f *File) Header() map[string]any {
	h, _ := f.contents["header"].(map[string]any)
	return h
}

// Date returns the header's issue date.
func (f *File) Date() time.Time {
	t, _ := f.Header()["date"].(time.Time)
	return t
}

// Areas returns the header's area names.
func (f *File) Areas() []string {
	raw, _ := f.Header()["areas"].([]any)
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if s, ok := a.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Timestep returns the i-th timestep.
func (f *File) Timestep(i int) *Timestep { return f.At(i).(*Timestep) }

// Timesteps returns all timesteps in order.
func (f *File) Timesteps() []*Timestep {
	out := make([]*Timestep, f.Len())
	for i := range out {
		out[i] = f.Timestep(i)
	}
	return out
}

// Timestep is one validated timestep.
type Timestep struct{ Element }

func newTimestep(c map[string]any) *Timestep { return &Timestep{Element{contents: c}} }

// Forecast returns the timestep's feature collection.
func (t *Timestep) Forecast() *Forecast { return t.contents["forecast"].(*Forecast) }

// Valid returns the validity window. A window with fewer than two entries
// yields zero times for the missing ends.
func (t *Timestep) Valid() (from, to time.Time) {
	valid, _ := t.contents["valid"].([]any)
	if len(valid) > 0 {
		from, _ = valid[0].(time.Time)
	}
	if len(valid) > 1 {
		to, _ = valid[1].(time.Time)
	}
	return from, to
}

// Range returns the timestep's numeric range.
func (t *Timestep) Range() []int64 {
	raw, _ := t.contents["range"].([]any)
	out := make([]int64, 0, len(raw))
	for _, r := range raw {
		if i, ok := r.(int64); ok {
			out = append(out, i)
		}
	}
	return out
}

// Forecast is a validated feature collection. Indexed access yields features.
type Forecast struct{ Container }

func newForecast(c map[string]any) *Forecast {
	return &Forecast{Container{Element: Element{contents: c}, seqField: "features"}}
}

// Feature returns the i-th feature.
func (f *Forecast) Feature(i int) *Feature { return f.At(i).(*Feature) }

// Features returns all features in order.
func (f *Forecast) Features() []*Feature {
	out := make([]*Feature, f.Len())
	for i := range out {
		out[i] = f.Feature(i)
	}
	return out
}

// Feature is one validated polygon feature.
type Feature struct{ Element }

func newFeature(c map[string]any) *Feature { return &Feature{Element{contents: c}} }

// Properties returns the feature's validated properties.
func (f *Feature) Properties() *Properties { return f.contents["properties"].(*Properties) }

// Rings returns the polygon rings as points.
func (f *Feature) Rings() [][]validators.Point {
	geom, _ := f.contents["geometry"].(map[string]any)
	rings, _ := geom["coordinates"].([]any)
	out := make([][]validators.Point, 0, len(rings))
	for _, r := range rings {
		pts, _ := r.([]any)
		ring := make([]validators.Point, 0, len(pts))
		for _, p := range pts {
			if pt, ok := p.(validators.Point); ok {
				ring = append(ring, pt)
			}
		}
		out = append(out, ring)
	}
	return out
}

// Properties are a feature's validated properties, parameters included.
type Properties struct{ Element }

func newProperties(c map[string]any) *Properties { return &Properties{Element{contents: c}} }

// ParameterGroup returns the group that selected the parameter schema.
func (p *Properties) ParameterGroup() string {
	s, _ := p.contents["parameterGroup"].(string)
	return s
}

// Parameters returns the validated parameters.
func (p *Properties) Parameters() map[string]any {
	m, _ := p.contents["parameters"].(map[string]any)
	return m
}

// DataValue is one flattened parameter value.
type DataValue struct {
	Name  string
	Value string
}

// Flatten turns nested parameters into prefixed, colon-separated names,
// e.g. "met:info:llf:windspeed:from" = "10", sorted by name.
func (p *Properties) Flatten(prefix string) []DataValue {
	var out []DataValue
	flatten(p.Parameters(), prefix, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func flatten(m map[string]any, prefix string, out *[]DataValue) {
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			flatten(sub, prefix+k+":", out)
			continue
		}
		*out = append(*out, DataValue{Name: prefix + k, Value: fmt.Sprint(v)})
	}
}
