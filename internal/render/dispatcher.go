// Package render derives the public-page render plan from a persisted
// section collection. It is a read-side projection: the dispatcher never
// mutates the layout store and is safe to run against a stale copy while a
// save is in flight.
package render

import (
	"sort"

	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/internal/sections"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Unit is one renderable section: the resolved renderer handle plus the
// section's settings bag and animation metadata, forwarded verbatim. Items
// is populated by Hydrate for data-driven section types.
type Unit struct {
	SectionID  string
	Type       string
	Title      string
	Renderer   sections.RendererHandle
	Settings   map[string]any
	Animations *layout.Animations
	BodyHTML   []byte
	Items      []any
}

// PlanOptions controls plan derivation.
type PlanOptions struct {
	// Breakpoint applies responsive visibility overrides when set to one of
	// the layout breakpoint identifiers. Empty means no override.
	Breakpoint string
}

// Dispatcher resolves sections to render units through the registry.
type Dispatcher struct {
	registry *sections.Registry
	markdown *MarkdownRenderer
	logger   interfaces.Logger
	catalog  interfaces.CatalogService
	banners  interfaces.BannerService
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger wires the dispatcher logger.
func WithLogger(logger interfaces.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMarkdownRenderer overrides the renderer used for markdown text
// sections.
func WithMarkdownRenderer(renderer *MarkdownRenderer) DispatcherOption {
	return func(d *Dispatcher) {
		if renderer != nil {
			d.markdown = renderer
		}
	}
}

// NewDispatcher constructs a dispatcher over the given registry.
func NewDispatcher(registry *sections.Registry, opts ...DispatcherOption) *Dispatcher {
	if registry == nil {
		registry = sections.NewBuiltinRegistry()
	}
	d := &Dispatcher{
		registry: registry,
		markdown: NewMarkdownRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Plan filters to enabled sections, sorts ascending by Order, and resolves
// each section's renderer. Unknown types resolve to the fallback placeholder
// handle rather than aborting the page.
func (d *Dispatcher) Plan(list []layout.Section, opts PlanOptions) []Unit {
	visible := make([]layout.Section, 0, len(list))
	for _, section := range list {
		if !section.Enabled {
			continue
		}
		if !visibleAt(section, opts.Breakpoint) {
			continue
		}
		visible = append(visible, layout.CloneSection(section))
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	units := make([]Unit, 0, len(visible))
	for _, section := range visible {
		handle := d.registry.RendererFor(section.Type)
		if handle.Fallback {
			d.logger.Debug("render.fallback", "section_id", section.ID, "type", section.Type)
		}
		unit := Unit{
			SectionID:  section.ID,
			Type:       section.Type,
			Title:      section.Title,
			Renderer:   handle,
			Settings:   section.Settings,
			Animations: section.Animations,
		}
		if body := d.renderMarkdown(section); body != nil {
			unit.BodyHTML = body
		}
		units = append(units, unit)
	}
	return units
}

// renderMarkdown pre-renders the HTML body for markdown text sections so
// the presentation layer receives ready-to-embed output. Render failures
// leave BodyHTML empty; the section still renders through its handle.
func (d *Dispatcher) renderMarkdown(section layout.Section) []byte {
	if section.Type != sections.TypeText || d.markdown == nil {
		return nil
	}
	format, _ := section.Settings["format"].(string)
	if format != "" && format != "markdown" {
		return nil
	}
	content, _ := section.Settings["content"].(string)
	if content == "" {
		return nil
	}
	body, err := d.markdown.Render([]byte(content))
	if err != nil {
		d.logger.Warn("render.markdown_failed", "section_id", section.ID, "error", err)
		return nil
	}
	return body
}

func visibleAt(section layout.Section, breakpoint string) bool {
	if breakpoint == "" || section.Responsive == nil {
		return true
	}
	rule, ok := section.Responsive[breakpoint]
	if !ok || rule.Visible == nil {
		return true
	}
	return *rule.Visible
}
