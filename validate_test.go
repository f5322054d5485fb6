package llfschema_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/dsl"
)

func header() *llfschema.Mapping {
	return dsl.Object().
		Field("type", dsl.Literal("Header")).
		Field("status", dsl.Text()).
		Field("count", dsl.Integer()).
		Field("ratio", dsl.Real()).
		Field("areas", dsl.Array(dsl.Text())).
		Field("note", dsl.Text()).Optional().
		Field("kind", dsl.Text()).Default("area").
		MustBuild()
}

func validHeader() map[string]any {
	return map[string]any{
		"type":   "Header",
		"status": "ok",
		"count":  int64(3),
		"ratio":  0.5,
		"areas":  []any{"A", "B"},
		"extra":  "ignored",
	}
}

func TestValidate_MirrorsDescriptor(t *testing.T) {
	ctx := context.Background()
	got, err := llfschema.Validate(ctx, validHeader(), header())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"type":   "Header",
		"status": "ok",
		"count":  int64(3),
		"ratio":  0.5,
		"areas":  []any{"A", "B"},
		"kind":   "area",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result:\n got  %#v\n want %#v", got, want)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	in := validHeader()
	if _, err := llfschema.Validate(context.Background(), in, header()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := in["kind"]; ok {
		t.Fatalf("fallback leaked into the raw input")
	}
	if _, ok := in["extra"]; !ok {
		t.Fatalf("raw input lost a key")
	}
}

func TestValidate_MissingFieldCarriesFullPath(t *testing.T) {
	outer := dsl.Object().
		Field("items", dsl.Array(header())).
		MustBuild()
	h := validHeader()
	delete(h, "status")
	_, err := llfschema.Validate(context.Background(), map[string]any{"items": []any{validHeader(), h}}, outer)
	iss, ok := llfschema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single issue, got %v", err)
	}
	if iss[0].Code != llfschema.CodeMissingField {
		t.Fatalf("expected missing_field, got %s", iss[0].Code)
	}
	if got := iss[0].Path.Pointer(); got != "/items/1/status" {
		t.Fatalf("unexpected path %s", got)
	}
	if iss[0].Params["field"] != "status" {
		t.Fatalf("expected field param, got %v", iss[0].Params)
	}
}

func TestValidate_Kinds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		d    llfschema.Descriptor
		v    any
		code string
	}{
		{"mapping vs sequence", header(), []any{}, llfschema.CodeExpectedMapping},
		{"sequence vs text", dsl.Array(dsl.Text()), "x", llfschema.CodeExpectedSequence},
		{"literal mismatch", dsl.Literal("Polygon"), "Point", llfschema.CodeLiteralMismatch},
		{"integer for real", dsl.Real(), int64(1), llfschema.CodeTypeMismatch},
		{"real for integer", dsl.Integer(), 1.0, llfschema.CodeTypeMismatch},
		{"integer json.Number real text", dsl.Integer(), json.Number("1.5"), llfschema.CodeTypeMismatch},
		{"text for integer", dsl.Integer(), "1", llfschema.CodeTypeMismatch},
		{"null text", dsl.Text(), nil, llfschema.CodeTypeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := llfschema.Validate(ctx, tc.v, tc.d)
			iss, ok := llfschema.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected issues, got %v", err)
			}
			if iss[0].Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, iss[0].Code)
			}
			if iss[0].Path.Pointer() != "/" {
				t.Fatalf("expected root path, got %s", iss[0].Path)
			}
		})
	}
}

func TestValidate_ScalarsAccepted(t *testing.T) {
	ctx := context.Background()
	if v, err := llfschema.Validate(ctx, json.Number("7"), dsl.Integer()); err != nil || v != int64(7) {
		t.Fatalf("json.Number integer: v=%v err=%v", v, err)
	}
	if v, err := llfschema.Validate(ctx, json.Number("7.25"), dsl.Real()); err != nil || v != 7.25 {
		t.Fatalf("json.Number real: v=%v err=%v", v, err)
	}
	if v, err := llfschema.Validate(ctx, 3, dsl.Literal(int64(3))); err != nil || v != 3 {
		t.Fatalf("literal int: v=%v err=%v", v, err)
	}
}

func TestValidate_SequenceKeepsOrder(t *testing.T) {
	got, err := llfschema.Validate(context.Background(), []any{int64(3), int64(1), int64(2)}, dsl.Array(dsl.Integer()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(3), int64(1), int64(2)}) {
		t.Fatalf("unexpected order: %v", got)
	}
	got, err = llfschema.Validate(context.Background(), []any{}, dsl.Array(dsl.Integer()))
	if err != nil || len(got.([]any)) != 0 {
		t.Fatalf("empty sequence: v=%v err=%v", got, err)
	}
}

func TestValidate_CustomTransformsAndKeepsReason(t *testing.T) {
	reason := errors.New("too cold")
	d := dsl.Object().
		Field("double", dsl.Func("double", func(_ context.Context, v any) (any, error) {
			i, _ := llfschema.AsInt(v)
			return i * 2, nil
		})).
		Field("temp", dsl.Func("temp", func(_ context.Context, v any) (any, error) {
			return nil, reason
		})).Optional().
		MustBuild()

	got, err := llfschema.Validate(context.Background(), map[string]any{"double": int64(4)}, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(map[string]any)["double"] != int64(8) {
		t.Fatalf("custom result not used: %v", got)
	}

	_, err = llfschema.Validate(context.Background(), map[string]any{"double": int64(4), "temp": int64(-90)}, d)
	iss, ok := llfschema.AsIssues(err)
	if !ok || iss[0].Code != llfschema.CodeCustomFailed || iss[0].Path.Pointer() != "/temp" {
		t.Fatalf("expected custom_failed at /temp, got %v", err)
	}
	if !errors.Is(iss[0].Cause, reason) {
		t.Fatalf("expected the validator's reason to be preserved, got %v", iss[0].Cause)
	}
	if iss[0].Params["validator"] != "temp" {
		t.Fatalf("expected validator name param, got %v", iss[0].Params)
	}
}

func TestValidate_CustomIssuesAreRebased(t *testing.T) {
	inner := dsl.Object().Field("x", dsl.Integer()).MustBuild()
	wrap := dsl.Func("wrap", func(ctx context.Context, v any) (any, error) {
		return llfschema.Validate(ctx, v, inner)
	})
	d := dsl.Object().Field("outer", dsl.Array(wrap)).MustBuild()

	_, err := llfschema.Validate(context.Background(), map[string]any{"outer": []any{map[string]any{"x": "no"}}}, d)
	iss, ok := llfschema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != llfschema.CodeTypeMismatch || iss[0].Path.Pointer() != "/outer/0/x" {
		t.Fatalf("unexpected issue %v", iss[0])
	}
}

func TestValidate_FailFastVsCollectAll(t *testing.T) {
	ctx := context.Background()
	bad := map[string]any{"type": "Other", "count": "x", "areas": []any{int64(1), "ok", int64(2)}}

	_, err := llfschema.Validate(ctx, bad, header())
	iss, _ := llfschema.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("fail-fast should report exactly one issue, got %v", iss)
	}

	_, err = llfschema.Validate(ctx, bad, header(), llfschema.Options{CollectAll: true})
	iss, _ = llfschema.AsIssues(err)
	// type, status, count, ratio, areas/0, areas/2
	if len(iss) != 6 {
		t.Fatalf("collect mode should report 6 issues, got %d: %v", len(iss), iss)
	}
	if iss[len(iss)-1].Path.Pointer() != "/areas/2" {
		t.Fatalf("expected declaration order, last path was %s", iss[len(iss)-1].Path)
	}
}

func TestValidate_UnknownStrict(t *testing.T) {
	ctx := context.Background()
	_, err := llfschema.Validate(ctx, validHeader(), header(), llfschema.Options{Unknown: llfschema.UnknownStrict})
	iss, ok := llfschema.AsIssues(err)
	if !ok || iss[0].Code != llfschema.CodeUnknownKey || iss[0].Path.Pointer() != "/extra" {
		t.Fatalf("expected unknown_key at /extra, got %v", err)
	}
}

func TestValidate_OptionsInheritedByNestedCalls(t *testing.T) {
	inner := dsl.Object().Field("a", dsl.Integer()).Field("b", dsl.Integer()).MustBuild()
	wrap := dsl.Func("wrap", func(ctx context.Context, v any) (any, error) {
		return llfschema.Validate(ctx, v, inner)
	})
	_, err := llfschema.Validate(context.Background(), map[string]any{}, wrap, llfschema.Options{CollectAll: true})
	iss, _ := llfschema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("nested validation should inherit collect mode, got %v", iss)
	}
}

func TestValidate_MaxDepth(t *testing.T) {
	d := dsl.Array(dsl.Array(dsl.Array(dsl.Integer())))
	v := []any{[]any{[]any{int64(1)}}}
	if _, err := llfschema.Validate(context.Background(), v, d); err != nil {
		t.Fatalf("default depth should be enough: %v", err)
	}
	_, err := llfschema.Validate(context.Background(), v, d, llfschema.Options{MaxDepth: 2})
	if !llfschema.HasCode(err, llfschema.CodeTooDeep) {
		t.Fatalf("expected too_deep, got %v", err)
	}
}

func TestValidate_NilDescriptor(t *testing.T) {
	if _, err := llfschema.Validate(context.Background(), "x", nil); err == nil {
		t.Fatalf("expected error for nil descriptor")
	}
}
