// Package templates ships the canned layout templates an operator can apply
// to a storefront page. Each template is a frontmatter manifest followed by
// a JSON array of fully-formed sections.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-storefront/internal/layout"
)

//go:embed files/*.layout
var builtinFS embed.FS

// DefaultKey identifies the template installed as the baseline layout when
// no persisted document exists.
const DefaultKey = "classic-storefront"

var (
	ErrTemplateNotFound = errors.New("templates: template not found")
	ErrTemplateInvalid  = errors.New("templates: template document invalid")
)

// Manifest is the frontmatter envelope of a template file.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// Template pairs a manifest with its ordered section list. Sections carry
// contiguous Order values so ApplyTemplate can install them verbatim.
type Template struct {
	Key      string
	Manifest Manifest
	Sections []layout.Section
}

// Builtin returns every embedded template, sorted by key.
func Builtin() ([]Template, error) {
	entries, err := fs.ReadDir(builtinFS, "files")
	if err != nil {
		return nil, fmt.Errorf("templates: read embedded catalog: %w", err)
	}

	out := make([]Template, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".layout") {
			continue
		}
		source, err := builtinFS.ReadFile("files/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("templates: read %s: %w", entry.Name(), err)
		}
		template, err := Parse(source)
		if err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", entry.Name(), err)
		}
		out = append(out, template)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Get resolves a template by key.
func Get(key string) (Template, error) {
	all, err := Builtin()
	if err != nil {
		return Template{}, err
	}
	for _, template := range all {
		if template.Key == key {
			return template, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
}

// Default returns the baseline template.
func Default() (Template, error) {
	return Get(DefaultKey)
}

// DefaultSections returns the baseline template's sections, or an empty
// collection if the embedded catalog is unreadable.
func DefaultSections() []layout.Section {
	template, err := Default()
	if err != nil {
		return nil
	}
	return layout.CloneSections(template.Sections)
}

// Parse reads a template document: YAML frontmatter manifest plus a JSON
// array body. Sections are re-stamped with Order equal to their position so
// hand-edited documents cannot violate the ordering contract.
func Parse(source []byte) (Template, error) {
	var manifest Manifest
	body, err := frontmatter.Parse(bytes.NewReader(source), &manifest)
	if err != nil {
		return Template{}, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return Template{}, fmt.Errorf("%w: manifest name required", ErrTemplateInvalid)
	}

	var list []layout.Section
	if err := json.Unmarshal(body, &list); err != nil {
		return Template{}, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	for i := range list {
		list[i].Order = i
	}

	key, err := slug.Normalize(manifest.Name)
	if err != nil || key == "" {
		return Template{}, fmt.Errorf("%w: manifest name not sluggable", ErrTemplateInvalid)
	}

	return Template{
		Key:      key,
		Manifest: manifest,
		Sections: list,
	}, nil
}
