package decode_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/decode"
)

func TestJSON_NumbersKeepKind(t *testing.T) {
	v, err := decode.JSONBytes([]byte(`{"i": 1013, "f": 10.5, "z": 0.0, "s": "x", "b": true, "n": null, "a": [1, 2.5]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"i": int64(1013), "f": 10.5, "z": 0.0, "s": "x", "b": true, "n": nil,
		"a": []any{int64(1), 2.5},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected tree:\n got  %#v\n want %#v", v, want)
	}
}

func TestJSON_Unreadable(t *testing.T) {
	for _, in := range []string{`{"a":`, `{} {}`, ``} {
		_, err := decode.JSON(strings.NewReader(in))
		if !llfschema.HasCode(err, llfschema.CodeSourceUnreadable) {
			t.Fatalf("%q: expected source_unreadable, got %v", in, err)
		}
	}
}

func TestYAML_Normalized(t *testing.T) {
	v, err := decode.YAMLBytes([]byte("header:\n  ref: \"12\"\n  n: 3\nvals: [1.5, 2]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"header": map[string]any{"ref": "12", "n": int64(3)},
		"vals":   []any{1.5, int64(2)},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected tree:\n got  %#v\n want %#v", v, want)
	}
	if _, err := decode.YAMLBytes([]byte("a: 1\n---\nb: 2\n")); !llfschema.HasCode(err, llfschema.CodeSourceUnreadable) {
		t.Fatalf("expected rejection of multiple documents, got %v", err)
	}
	if _, err := decode.YAMLBytes([]byte("1: a\n")); !llfschema.HasCode(err, llfschema.CodeSourceUnreadable) {
		t.Fatalf("expected rejection of non-string keys, got %v", err)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	js := filepath.Join(dir, "a.json")
	ym := filepath.Join(dir, "a.yml")
	if err := os.WriteFile(js, []byte(`{"k": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ym, []byte("k: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{js, ym} {
		v, err := decode.File(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if v.(map[string]any)["k"] != int64(1) {
			t.Fatalf("%s: unexpected value %v", p, v)
		}
	}
	if _, err := decode.File(filepath.Join(dir, "missing.json")); !llfschema.HasCode(err, llfschema.CodeSourceUnreadable) {
		t.Fatalf("expected source_unreadable, got %v", err)
	}
	if decode.FormatFor("X.YAML") != decode.FormatYAML || decode.FormatFor("x.geojson") != decode.FormatJSON {
		t.Fatalf("unexpected format detection")
	}
}
