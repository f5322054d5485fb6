package llfschema

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/metno/llfschema/i18n"
)

// Validate checks v against d and returns the validated tree: maps and
// sequences are rebuilt from validated children and Custom leaves are
// replaced by their validator's result. v is never mutated.
//
// When opts are given the last one is installed in the context; otherwise the
// options already carried by ctx apply (see WithOptions). On failure the
// error is Issues and no partial result is returned.
func Validate(ctx context.Context, v any, d Descriptor, opts ...Options) (any, error) {
	if d == nil {
		return nil, fmt.Errorf("llfschema: nil descriptor")
	}
	if len(opts) > 0 {
		ctx = WithOptions(ctx, opts[len(opts)-1])
	}
	w := &walker{ctx: ctx, opt: OptionsFrom(ctx), base: depthFrom(ctx)}
	out, ok := w.value(v, d, nil, 0)
	if len(w.issues) > 0 || !ok {
		return nil, w.issues
	}
	return out, nil
}

// MustValidate is Validate for tests and schema self-checks; it panics on
// failure.
func MustValidate(ctx context.Context, v any, d Descriptor) any {
	out, err := Validate(ctx, v, d)
	if err != nil {
		panic(err)
	}
	return out
}

type walker struct {
	ctx    context.Context
	opt    Options
	base   int
	issues Issues
}

// stop reports whether the walk must unwind after a recorded issue.
func (w *walker) stop() bool { return !w.opt.CollectAll && len(w.issues) > 0 }

func (w *walker) fail(p Path, code string, data map[string]string, params map[string]any) {
	w.issues = append(w.issues, Issue{Path: p, Code: code, Message: i18n.T(code, data), Params: params})
}

func (w *walker) value(v any, d Descriptor, p Path, depth int) (any, bool) {
	if limit := w.opt.maxDepth(); w.base+depth > limit {
		w.fail(p, CodeTooDeep, map[string]string{"max": strconv.Itoa(limit)}, map[string]any{"max": limit})
		return nil, false
	}
	switch t := d.(type) {
	case *Mapping:
		return w.mapping(v, t, p, depth)
	case Sequence:
		return w.sequence(v, t, p, depth)
	case Literal:
		return w.literal(v, t, p)
	case TypeTag:
		return w.typeTag(v, t, p)
	case Custom:
		return w.custom(v, t, p, depth)
	default:
		panic(fmt.Sprintf("llfschema: unsupported descriptor %T", d))
	}
}

func (w *walker) mapping(v any, m *Mapping, p Path, depth int) (any, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		w.fail(p, CodeExpectedMapping, nil, map[string]any{"actual": kindOf(v)})
		return nil, false
	}
	out := make(map[string]any, len(m.fields))
	valid := true
	for _, f := range m.fields {
		fp := p.Field(f.Name)
		fv, present := raw[f.Name]
		if !present {
			if !f.Optional {
				w.fail(fp, CodeMissingField, map[string]string{"field": f.Name}, map[string]any{"field": f.Name})
				valid = false
				if w.stop() {
					return nil, false
				}
				continue
			}
			if f.Fallback == nil {
				continue
			}
			fv = f.Fallback
		}
		r, ok := w.value(fv, f.Desc, fp, depth+1)
		if !ok {
			valid = false
			if w.stop() {
				return nil, false
			}
			continue
		}
		out[f.Name] = r
	}
	if w.opt.Unknown == UnknownStrict {
		var unknown []string
		for k := range raw {
			if _, declared := m.index[k]; !declared {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			w.fail(p.Field(k), CodeUnknownKey, map[string]string{"field": k}, map[string]any{"field": k})
			valid = false
			if w.stop() {
				return nil, false
			}
		}
	}
	return out, valid
}

func (w *walker) sequence(v any, s Sequence, p Path, depth int) (any, bool) {
	raw, ok := v.([]any)
	if !ok {
		w.fail(p, CodeExpectedSequence, nil, map[string]any{"actual": kindOf(v)})
		return nil, false
	}
	out := make([]any, len(raw))
	valid := true
	for i, item := range raw {
		r, ok := w.value(item, s.Item, p.Index(i), depth+1)
		if !ok {
			valid = false
			if w.stop() {
				return nil, false
			}
			continue
		}
		out[i] = r
	}
	return out, valid
}

func (w *walker) literal(v any, l Literal, p Path) (any, bool) {
	if !Equal(l.Value, v) {
		data := map[string]string{"expected": fmt.Sprintf("%q", fmt.Sprint(l.Value)), "actual": fmt.Sprintf("%q", fmt.Sprint(v))}
		w.fail(p, CodeLiteralMismatch, data, map[string]any{"expected": l.Value, "actual": v})
		return nil, false
	}
	return v, true
}

func (w *walker) typeTag(v any, t TypeTag, p Path) (any, bool) {
	switch t.Kind {
	case KindText:
		if s, ok := v.(string); ok {
			return s, true
		}
	case KindInteger:
		if i, ok := AsInt(v); ok {
			return i, true
		}
	case KindReal:
		if f, ok := AsReal(v); ok {
			return f, true
		}
	}
	actual := kindOf(v)
	w.fail(p, CodeTypeMismatch, map[string]string{"expected": t.Kind.String(), "actual": actual},
		map[string]any{"expected": t.Kind.String(), "actual": actual})
	return nil, false
}

func (w *walker) custom(v any, c Custom, p Path, depth int) (any, bool) {
	if c.Validator == nil {
		w.fail(p, CodeCustomFailed, nil, map[string]any{"validator": c.Name})
		return nil, false
	}
	r, err := c.Validator.Validate(withDepth(w.ctx, w.base+depth), v)
	if err == nil {
		return r, true
	}
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		w.issues = append(w.issues, iss.Rebase(p)...)
		return nil, false
	}
	msg := i18n.T(CodeCustomFailed, nil) + ": " + err.Error()
	w.issues = append(w.issues, Issue{Path: p, Code: CodeCustomFailed, Message: msg, Cause: err, Params: map[string]any{"validator": c.Name}})
	return nil, false
}
