// Package storefront assembles the page layout engine: an ordered, typed
// section collection with undo/redo history, debounced persistence, JSON
// import/export, layout templates, and a render plan dispatcher.
package storefront

import (
	"github.com/goliatone/go-storefront/internal/di"
	"github.com/goliatone/go-storefront/internal/history"
	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/internal/render"
	"github.com/goliatone/go-storefront/internal/sections"
	"github.com/goliatone/go-storefront/internal/templates"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Store exports the layout store contract for consumers of the storefront package.
type Store = layout.Store

// Section exports the section record.
type Section = layout.Section

// SectionPatch exports the partial-update payload for Store.Update.
type SectionPatch = layout.SectionPatch

// Animations exports the per-section animation metadata.
type Animations = layout.Animations

// ResponsiveRule exports the per-breakpoint visibility override.
type ResponsiveRule = layout.ResponsiveRule

// Registry exports the section type registry.
type Registry = sections.Registry

// Descriptor exports the section type descriptor.
type Descriptor = sections.Descriptor

// History exports the undo/redo snapshot history.
type History = history.History

// Trail exports the bounded audit trail.
type Trail = history.Trail

// Dispatcher exports the render plan dispatcher.
type Dispatcher = render.Dispatcher

// RenderUnit exports one resolved entry of a render plan.
type RenderUnit = render.Unit

// PlanOptions exports the render plan options.
type PlanOptions = render.PlanOptions

// Template exports a parsed layout template.
type Template = templates.Template

// RemoteSyncer exports the best-effort secondary persistence contract.
type RemoteSyncer = interfaces.RemoteSyncer

// Notifier exports the persistence failure notification contract.
type Notifier = interfaces.Notifier

// CatalogService exports the host catalog contract used by render hydration.
type CatalogService = interfaces.CatalogService

// CatalogItem exports the catalog record shape.
type CatalogItem = interfaces.CatalogItem

// BannerService exports the host banner contract used by render hydration.
type BannerService = interfaces.BannerService

// BannerDescriptor exports the banner record shape.
type BannerDescriptor = interfaces.BannerDescriptor

// ImageStore exports the binary asset upload contract used by section
// editors for image-backed settings.
type ImageStore = interfaces.ImageStore

// Clock exports the injectable time source accepted by the clock options.
type Clock = interfaces.Clock

// Logger exports the structured logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Option re-exports DI container overrides.
type Option = di.Option

// WithLoggerProvider injects the host logger provider.
var WithLoggerProvider = di.WithLoggerProvider

// WithDocumentRepository overrides the layout document repository.
var WithDocumentRepository = di.WithDocumentRepository

// WithRegistry overrides the section registry.
var WithRegistry = di.WithRegistry

// WithDB injects an already-open database handle.
var WithDB = di.WithDB

// WithCache injects the repository cache service and key serializer.
var WithCache = di.WithCache

// WithRemoteSyncer wires the best-effort remote persistence target.
var WithRemoteSyncer = di.WithRemoteSyncer

// WithNotifier wires the persistence failure notifier.
var WithNotifier = di.WithNotifier

// WithCatalogService wires the host catalog for render hydration.
var WithCatalogService = di.WithCatalogService

// WithBannerService wires the host banner source for render hydration.
var WithBannerService = di.WithBannerService

// Module is the top level storefront runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a storefront module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Layout returns the configured layout store.
func (m *Module) Layout() Store {
	return m.container.Store()
}

// Sections returns the configured section registry.
func (m *Module) Sections() *Registry {
	return m.container.Registry()
}

// History returns the undo/redo snapshot history.
func (m *Module) History() *History {
	return m.container.History()
}

// Trail returns the audit trail.
func (m *Module) Trail() *Trail {
	return m.container.Trail()
}

// Render returns the render plan dispatcher.
func (m *Module) Render() *Dispatcher {
	return m.container.Dispatcher()
}

// Templates returns the built-in layout template catalog.
func (m *Module) Templates() ([]Template, error) {
	return templates.Builtin()
}

// Close stops the layout store's autosave timer, flushing any pending save.
func (m *Module) Close() {
	if m == nil || m.container == nil {
		return
	}
	if store := m.container.Store(); store != nil {
		store.Close()
	}
}
