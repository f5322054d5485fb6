package llf

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/dsl"
	"github.com/metno/llfschema/i18n"
	"github.com/metno/llfschema/validators"
)

// Intensities used by the ctop, ice and turb groups.
var intensities = []string{"FBL", "MOD", "SEV"}

// fromTo builds a {"from": d, "to": d} mapping.
func fromTo(from, to llfschema.Descriptor) *llfschema.Mapping {
	return dsl.Object().Field("from", from).Field("to", to).MustBuild()
}

func localGeneral(d llfschema.Descriptor) *llfschema.Mapping {
	return dsl.Object().Field("local", d).Field("general", d).MustBuild()
}

func intensity() *llfschema.Mapping {
	return fromTo(validators.OneOfText(intensities...), validators.OneOfText(intensities...))
}

// ParameterGroups returns a fresh table of parameter-group schemas keyed by
// group name.
func ParameterGroups() map[string]llfschema.Descriptor {
	visibility := localGeneral(fromTo(validators.IntRange(0, 9999), validators.IntRange(0, 9999)))
	wind := dsl.Object().
		Field("windspeed", validators.IntRange(0, 99)).
		Field("winddirection", validators.IntRange(0, 360)).
		MustBuild()
	temp := dsl.Object().Field("temp", validators.IntRange(-40, 50)).MustBuild()

	return map[string]llfschema.Descriptor{
		"vis-cld": dsl.Object().
			Field("presentweather", localGeneral(dsl.Array(dsl.Text()))).
			Field("cloudbase", localGeneral(fromTo(validators.IntRange(0, 9999), validators.IntRange(0, 9999)))).
			Field("visibility", visibility).
			MustBuild(),
		"ctop": dsl.Object().
			Field("cloudtop", fromTo(validators.IntRange(0, 99), validators.IntRange(0, 9999))).
			Field("turbulence", intensity()).
			MustBuild(),
		"zero": dsl.Object().
			Field("freezinglvl", fromTo(validators.IntRange(0, 125), validators.IntRange(0, 125))).
			Field("neglayer", fromTo(validators.IntRange(0, 125), validators.IntRange(0, 125))).
			MustBuild(),
		"ice": dsl.Object().
			Field("icinglvl", fromTo(validators.IntRange(0, 99), validators.IntRange(0, 9999))).
			Field("intensity", intensity()).
			MustBuild(),
		"hwnd-tmp": dsl.Object().
			Field("highwind", validators.AnyEntries(wind)).
			Field("temperature", validators.AnyEntries(temp)).
			MustBuild(),
		"wnd": dsl.Object().
			Field("windspeed", fromTo(validators.IntRange(0, 99), validators.IntRange(0, 99))).
			Field("winddirection", validators.IntRange(0, 360)).
			MustBuild(),
		"gust": fromTo(validators.IntRange(0, 99), validators.IntRange(0, 99)),
		"turb": dsl.Object().
			Field("turbulence", fromTo(validators.IntRange(0, 125), validators.IntRange(0, 125))).
			Field("intensity", intensity()).
			MustBuild(),
		"qnh": dsl.Object().
			Field("pressure", validators.IntRange(0, 1100)).
			MustBuild(),
	}
}

// Schema is the complete LLF file description. It is immutable once built
// and safe for concurrent use.
type Schema struct {
	file       *llfschema.Mapping
	properties propertiesValidator
	groups     map[string]llfschema.Descriptor
}

// NewSchema builds the LLF schema with the standard parameter groups.
func NewSchema() *Schema { return NewSchemaWithGroups(ParameterGroups()) }

// NewSchemaWithGroups builds the LLF schema with a custom parameter-group
// table. The table is copied.
func NewSchemaWithGroups(groups map[string]llfschema.Descriptor) *Schema {
	g := make(map[string]llfschema.Descriptor, len(groups))
	for k, v := range groups {
		g[k] = v
	}
	s := &Schema{groups: g}
	s.file = s.buildFile()
	return s
}

func (s *Schema) buildFile() *llfschema.Mapping {
	isoDate := validators.ISODate()

	s.properties = propertiesValidator{
		fixed: dsl.Object().
			Field("timeStep", isoDate).
			Field("refTime", isoDate).
			Field("parameterGroup", dsl.Text()).
			Field("valid", fromTo(isoDate, isoDate)).
			Field("parameters", dsl.Func("parameters", passthrough)).
			MustBuild(),
		groups: s.groups,
	}

	feature := dsl.Object().
		Field("type", dsl.Literal("Feature")).
		Field("geometry", dsl.Object().
			Field("type", dsl.Literal("Polygon")).
			Field("coordinates", dsl.Array(dsl.Array(validators.LonLat()))).
			MustBuild()).
		Field("properties", dsl.Custom("properties", s.properties)).
		MustBuild()

	forecast := dsl.Object().
		Field("type", dsl.Literal("FeatureCollection")).
		Field("features", dsl.Array(wrap("feature", feature, newFeature))).
		MustBuild()

	timestep := dsl.Object().
		Field("range", dsl.Array(dsl.Integer())).
		Field("valid", dsl.Array(isoDate)).
		Field("forecast", wrap("forecast", forecast, newForecast)).
		MustBuild()

	header := dsl.Object().
		Field("status", dsl.Text()).
		Field("group", dsl.Text()).
		Field("locale", dsl.Text()).
		Field("ref", validators.Hour()).
		Field("start", validators.Hour()).
		Field("date", validators.ShortDate()).
		Field("end", validators.Hour()).
		Field("type", dsl.Text()).
		Field("areas", dsl.Array(dsl.Text())).
		MustBuild()

	return dsl.Object().
		Field("header", header).
		Field("timesteps", dsl.Array(wrap("timestep", timestep, newTimestep))).
		MustBuild()
}

// Descriptor returns the file-level descriptor.
func (s *Schema) Descriptor() *llfschema.Mapping { return s.file }

// Group returns the parameter schema for a group name.
func (s *Schema) Group(name string) (llfschema.Descriptor, bool) {
	d, ok := s.groups[name]
	return d, ok
}

// GroupNames lists the known parameter groups in sorted order.
func (s *Schema) GroupNames() []string {
	names := make([]string, 0, len(s.groups))
	for k := range s.groups {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate checks a decoded LLF document and wraps the result in a File.
func (s *Schema) Validate(ctx context.Context, raw any, opts ...llfschema.Options) (*File, error) {
	out, err := llfschema.Validate(ctx, raw, s.file, opts...)
	if err != nil {
		return nil, err
	}
	return newFile(out.(map[string]any)), nil
}

// ValidateProperties runs only the two-phase properties check. It is useful
// for producers that emit features one at a time.
func (s *Schema) ValidateProperties(ctx context.Context, raw any, opts ...llfschema.Options) (*Properties, error) {
	out, err := llfschema.Validate(ctx, raw, dsl.Custom("properties", s.properties), opts...)
	if err != nil {
		return nil, err
	}
	return out.(*Properties), nil
}

var defaultSchema = sync.OnceValue(NewSchema)

// Validate checks raw against the standard LLF schema.
func Validate(ctx context.Context, raw any, opts ...llfschema.Options) (*File, error) {
	return defaultSchema().Validate(ctx, raw, opts...)
}

// wrapper validates a mapping and hands the result to build.
type wrapper struct {
	m     *llfschema.Mapping
	build func(map[string]any) any
}

func (w wrapper) Validate(ctx context.Context, v any) (any, error) {
	out, err := llfschema.Validate(ctx, v, w.m)
	if err != nil {
		return nil, err
	}
	return w.build(out.(map[string]any)), nil
}

func wrap[T any](name string, m *llfschema.Mapping, build func(map[string]any) *T) llfschema.Descriptor {
	return dsl.Custom(name, wrapper{m: m, build: func(c map[string]any) any { return build(c) }})
}

// passthrough defers a value to a later validation phase.
func passthrough(_ context.Context, v any) (any, error) { return v, nil }

// propertiesValidator checks the fixed property fields, then validates
// parameters against the schema selected by parameterGroup.
type propertiesValidator struct {
	fixed  *llfschema.Mapping
	groups map[string]llfschema.Descriptor
}

func (p propertiesValidator) Validate(ctx context.Context, v any) (any, error) {
	out, err := llfschema.Validate(ctx, v, p.fixed)
	if err != nil {
		return nil, err
	}
	completed := out.(map[string]any)
	params := completed["parameters"]

	name := completed["parameterGroup"].(string)
	sub, ok := p.groups[name]
	if !ok {
		return nil, llfschema.IssueAt(llfschema.Path{}.Field("parameterGroup"), llfschema.CodeUnknownParameterGroup,
			i18n.T(llfschema.CodeUnknownParameterGroup, map[string]string{"name": fmt.Sprintf("%q", name)}),
			map[string]any{"name": name})
	}
	validated, err := llfschema.Validate(ctx, params, sub)
	if err != nil {
		if iss, ok := llfschema.AsIssues(err); ok {
			return nil, iss.Rebase(llfschema.Path{}.Field("parameters"))
		}
		return nil, err
	}
	completed["parameters"] = validated
	return newProperties(completed), nil
}
