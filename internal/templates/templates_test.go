package templates

import (
	"errors"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	all, err := Builtin()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 builtin templates, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, template := range all {
		if template.Key == "" {
			t.Fatalf("template %q has no key", template.Manifest.Name)
		}
		if seen[template.Key] {
			t.Fatalf("duplicate template key: %s", template.Key)
		}
		seen[template.Key] = true

		if len(template.Sections) == 0 {
			t.Fatalf("template %s has no sections", template.Key)
		}
		for i, section := range template.Sections {
			if section.Order != i {
				t.Fatalf("template %s section %d has Order %d", template.Key, i, section.Order)
			}
			if section.Type == "" {
				t.Fatalf("template %s section %d has no type", template.Key, i)
			}
		}
	}
	if !seen[DefaultKey] {
		t.Fatalf("default template %s missing from catalog", DefaultKey)
	}
}

func TestGetUnknownKey(t *testing.T) {
	if _, err := Get("no-such-template"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestDefaultSectionsAreIsolatedCopies(t *testing.T) {
	first := DefaultSections()
	if len(first) == 0 {
		t.Fatal("expected default sections")
	}
	first[0].Title = "mutated"

	second := DefaultSections()
	if second[0].Title == "mutated" {
		t.Fatal("callers share the default section slice")
	}
}

func TestParseRestampsOrder(t *testing.T) {
	source := []byte(`---
name: Test Layout
description: parse fixture
version: 1.0.0
---
[
  {"id": "a", "type": "hero", "title": "A", "enabled": true, "order": 40},
  {"id": "b", "type": "products", "title": "B", "enabled": true, "order": 2}
]`)

	template, err := Parse(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if template.Key != "test-layout" {
		t.Fatalf("unexpected key: %s", template.Key)
	}
	if template.Manifest.Version != "1.0.0" {
		t.Fatalf("manifest not parsed: %+v", template.Manifest)
	}
	for i, section := range template.Sections {
		if section.Order != i {
			t.Fatalf("section %d Order=%d after parse", i, section.Order)
		}
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string][]byte{
		"missing name": []byte("---\ndescription: no name\n---\n[]"),
		"bad body":     []byte("---\nname: Broken\n---\nnot json"),
	}
	for name, source := range cases {
		if _, err := Parse(source); !errors.Is(err, ErrTemplateInvalid) {
			t.Fatalf("%s: expected ErrTemplateInvalid, got %v", name, err)
		}
	}
}
