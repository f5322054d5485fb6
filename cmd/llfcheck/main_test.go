package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metno/llfschema/i18n"
)

const (
	minimalJSON = "../../llf/testdata/minimal.json"
	minimalYAML = "../../llf/testdata/minimal.yaml"
)

func TestRun_Valid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-format", "text", minimalJSON, minimalYAML}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr:\n%s", code, stderr.String())
	}
	if got := strings.Count(stdout.String(), "\n"); got != 2 {
		t.Fatalf("expected one line per feature, got:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "met:info:llf:pressure=1013") {
		t.Fatalf("missing qnh parameters in:\n%s", stdout.String())
	}
}

func TestRun_InvalidReportsPath(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"header": {}, "timesteps": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-all", bad}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	out := stderr.String()
	for _, want := range []string{"missing_field at /header/status", "missing_field at /header/areas"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRun_StrictAndLanguage(t *testing.T) {
	defer i18n.SetLanguage("en")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-strict", "-lang", "nb", minimalJSON}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("strict mode should reject the provider key, got exit %d", code)
	}
	if !strings.Contains(stderr.String(), "ukjent nøkkel provider") {
		t.Fatalf("expected norwegian message, got:\n%s", stderr.String())
	}
}

func TestRun_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.yaml")
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-format", "yaml", "-o", out, minimalYAML}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr:\n%s", code, stderr.String())
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "parameterGroup: wnd") {
		t.Fatalf("unexpected report:\n%s", b)
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 without files, got %d", code)
	}
	if code := run(context.Background(), []string{"-format", "kml", minimalJSON}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for unknown format, got %d", code)
	}
	if code := run(context.Background(), []string{"missing.json"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 for unreadable file, got %d", code)
	}
}
