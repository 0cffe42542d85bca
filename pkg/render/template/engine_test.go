package template

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello {{ name }}!")},
		"page.html":     {Data: []byte("<p>{{ body }}</p>")},
		"global.tmpl":   {Data: []byte("v{{ version }}")},
	}
}

func TestEngineRequiresFS(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("New without a template FS should fail")
	}
}

func TestEngineRendersWithContext(t *testing.T) {
	engine, err := New(WithFS(testTemplates()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := engine.Render("greeting", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hello World!" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEngineExtensionOverride(t *testing.T) {
	engine, err := New(WithFS(testTemplates()), WithExtension("html"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := engine.Render("page", map[string]any{"body": "hi"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "<p>hi</p>" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEngineGlobals(t *testing.T) {
	engine, err := New(WithFS(testTemplates()), WithGlobals(map[string]any{"version": 2}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := engine.Render("global", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "v2" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEngineUnknownTemplate(t *testing.T) {
	engine, err := New(WithFS(testTemplates()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.Render("missing", nil); err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Errorf("expected load error naming the template, got %v", err)
	}
}
