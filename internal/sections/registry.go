package sections

import (
	"sort"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Registration bundles a section descriptor with its renderer handle and an
// optional settings schema source used at the editor boundary.
type Registration struct {
	Descriptor     Descriptor
	Renderer       RendererHandle
	SettingsSchema string
}

// Registry stores built-in and host-defined section registrations. Lookups
// on unknown types resolve to a generic fallback so a persisted layout that
// references a type the current build does not recognise still renders.
type Registry struct {
	mu            sync.RWMutex
	registrations map[string]Registration
	schemas       map[string]*jsonschema.Schema
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make(map[string]Registration),
		schemas:       make(map[string]*jsonschema.Schema),
	}
}

// NewBuiltinRegistry constructs a registry preloaded with the built-in
// section catalog.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, registration := range builtinCatalog() {
		r.Register(registration)
	}
	return r
}

// Register adds or replaces a section registration.
func (r *Registry) Register(registration Registration) {
	key := canonicalKey(registration.Descriptor.Type)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registrations == nil {
		r.registrations = make(map[string]Registration)
	}
	r.registrations[key] = registration
	delete(r.schemas, key)
}

// Known reports whether the type has an explicit registration.
func (r *Registry) Known(sectionType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.registrations[canonicalKey(sectionType)]
	return ok
}

// Types returns the registered type identifiers in stable order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.registrations))
	for key := range r.registrations {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Describe returns the descriptor for the given type. Unknown types yield
// the generic fallback descriptor, never an error. Returned maps are copies
// so callers cannot mutate registry state.
func (r *Registry) Describe(sectionType string) Descriptor {
	r.mu.RLock()
	registration, ok := r.registrations[canonicalKey(sectionType)]
	r.mu.RUnlock()

	if !ok {
		return fallbackDescriptor(sectionType)
	}
	return cloneDescriptor(registration.Descriptor)
}

// RendererFor resolves the renderer handle for the given type, returning the
// fallback placeholder handle when the type is not registered.
func (r *Registry) RendererFor(sectionType string) RendererHandle {
	r.mu.RLock()
	registration, ok := r.registrations[canonicalKey(sectionType)]
	r.mu.RUnlock()

	if !ok {
		return RendererHandle{Name: fallbackRendererName, Fallback: true}
	}
	return registration.Renderer
}

// SettingsSchema compiles and returns the settings schema for the type when
// one was registered. The schema is an editor-boundary aid only; the engine
// never validates settings contents against it.
func (r *Registry) SettingsSchema(sectionType string) (*jsonschema.Schema, bool) {
	key := canonicalKey(sectionType)

	r.mu.RLock()
	if schema, ok := r.schemas[key]; ok {
		r.mu.RUnlock()
		return schema, true
	}
	registration, ok := r.registrations[key]
	r.mu.RUnlock()

	if !ok || strings.TrimSpace(registration.SettingsSchema) == "" {
		return nil, false
	}

	schema, err := jsonschema.CompileString(key+".settings.json", registration.SettingsSchema)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	r.schemas[key] = schema
	r.mu.Unlock()
	return schema, true
}

const (
	fallbackType         = "layout"
	fallbackRendererName = "sections/placeholder"
)

func fallbackDescriptor(sectionType string) Descriptor {
	label := strings.TrimSpace(sectionType)
	if label == "" {
		label = fallbackType
	}
	return Descriptor{
		Type:            fallbackType,
		Label:           label,
		DefaultTitle:    "Section",
		DefaultSettings: map[string]any{},
	}
}

func cloneDescriptor(src Descriptor) Descriptor {
	cloned := src
	cloned.DefaultSettings = CloneSettings(src.DefaultSettings)
	if src.DefaultAnimations != nil {
		animations := *src.DefaultAnimations
		cloned.DefaultAnimations = &animations
	}
	return cloned
}

// CloneSettings deep-copies a settings bag, including nested maps and slices.
func CloneSettings(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	cloned := make(map[string]any, len(src))
	for key, value := range src {
		cloned[key] = cloneValue(value)
	}
	return cloned
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneSettings(typed)
	case []any:
		cloned := make([]any, len(typed))
		for i, item := range typed {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return value
	}
}

func canonicalKey(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
