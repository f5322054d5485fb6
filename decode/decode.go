// Package decode turns JSON or YAML documents into the raw value trees the
// validation engine consumes: map[string]any, []any, string, int64, float64,
// bool and nil. Failures are reported as source_unreadable issues.
package decode

import (
	"bytes"
	jsonstd "encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/i18n"
)

// Format selects the document syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks a format from a file name; anything that is not .yaml or
// .yml is read as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func unreadable(err error) error {
	return llfschema.Issues{{
		Code:    llfschema.CodeSourceUnreadable,
		Message: i18n.T(llfschema.CodeSourceUnreadable, nil) + ": " + err.Error(),
		Cause:   err,
	}}
}

// File reads and decodes the file at path.
func File(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unreadable(err)
	}
	defer f.Close()
	return Reader(f, FormatFor(path))
}

// Reader decodes one document from r.
func Reader(r io.Reader, format Format) (any, error) {
	if format == FormatYAML {
		return YAML(r)
	}
	return JSON(r)
}

// JSON decodes exactly one JSON document from r. Numbers keep their integer
// or real nature: integral literals become int64, the rest float64.
func JSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, unreadable(err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, unreadable(err)
	}
	return normalizeJSON(v), nil
}

// JSONBytes decodes one JSON document from b.
func JSONBytes(b []byte) (any, error) { return JSON(bytes.NewReader(b)) }

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeJSON(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	case json.Number:
		n := jsonstd.Number(t)
		if i, ok := llfschema.AsInt(n); ok {
			return i
		}
		if f, ok := llfschema.AsReal(n); ok {
			return f
		}
		return n
	default:
		return v
	}
}

// YAML decodes exactly one YAML document from r. Mappings with non-string
// keys are rejected.
func YAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, unreadable(err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("more than one document")
		}
		return nil, unreadable(err)
	}
	out, err := normalizeYAML(v)
	if err != nil {
		return nil, unreadable(err)
	}
	return out, nil
}

// YAMLBytes decodes one YAML document from b.
func YAMLBytes(b []byte) (any, error) { return YAML(bytes.NewReader(b)) }

func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			n, err := normalizeYAML(vv)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			n, err := normalizeYAML(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			n, err := normalizeYAML(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = n
		}
		return arr, nil
	case int:
		return int64(t), nil
	default:
		return v, nil
	}
}
