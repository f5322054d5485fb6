package validators

import (
	"context"
	"sort"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/i18n"
)

type anyEntries struct{ item llfschema.Descriptor }

func (a anyEntries) Validate(ctx context.Context, v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, llfschema.IssueAt(nil, llfschema.CodeExpectedMapping, i18n.T(llfschema.CodeExpectedMapping, nil), nil)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(m))
	var issues llfschema.Issues
	for _, k := range keys {
		r, err := llfschema.Validate(ctx, m[k], a.item)
		if err != nil {
			iss, ok := llfschema.AsIssues(err)
			if !ok {
				return nil, err
			}
			issues = append(issues, iss.Rebase(llfschema.Path{}.Field(k))...)
			if llfschema.IsFailFast(ctx) {
				return nil, issues
			}
			continue
		}
		out[k] = r
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// AnyEntries validates every value of a map against item. Keys are kept as
// they are.
func AnyEntries(item llfschema.Descriptor) llfschema.Custom {
	return llfschema.Custom{Name: "anyentries", Validator: anyEntries{item: item}}
}
