package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/internal/sections"
)

func planIDs(units []Unit) []string {
	out := make([]string, len(units))
	for i, unit := range units {
		out[i] = unit.SectionID
	}
	return out
}

func TestPlanFiltersDisabledAndSortsByOrder(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	list := []layout.Section{
		{ID: "c", Type: sections.TypeNewsletter, Enabled: true, Order: 2},
		{ID: "a", Type: sections.TypeHero, Enabled: true, Order: 0},
		{ID: "hidden", Type: sections.TypeBanner, Enabled: false, Order: 1},
		{ID: "b", Type: sections.TypeProducts, Enabled: true, Order: 1},
	}

	units := dispatcher.Plan(list, PlanOptions{})

	got := planIDs(units)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d units, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected plan order: %v, want %v", got, want)
		}
	}
}

func TestPlanSortIsStableForEqualOrders(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	list := []layout.Section{
		{ID: "first", Type: sections.TypeHero, Enabled: true, Order: 5},
		{ID: "second", Type: sections.TypeBanner, Enabled: true, Order: 5},
	}

	units := dispatcher.Plan(list, PlanOptions{})
	if units[0].SectionID != "first" || units[1].SectionID != "second" {
		t.Fatalf("equal orders lost input ordering: %v", planIDs(units))
	}
}

func TestPlanUnknownTypeResolvesFallbackHandle(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	list := []layout.Section{
		{ID: "mystery", Type: "holographic-banner", Enabled: true, Order: 0},
	}

	units := dispatcher.Plan(list, PlanOptions{})
	if len(units) != 1 {
		t.Fatalf("unknown type dropped from the plan: %v", planIDs(units))
	}
	if !units[0].Renderer.Fallback {
		t.Fatal("expected the fallback renderer handle")
	}
	if units[0].Type != "holographic-banner" {
		t.Fatalf("unit lost its persisted type: %s", units[0].Type)
	}
}

func TestPlanForwardsSettingsAndAnimations(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	animations := &layout.Animations{Entrance: "slide-up", Duration: 400, Delay: 100}
	list := []layout.Section{
		{
			ID:         "hero",
			Type:       sections.TypeHero,
			Title:      "Welcome",
			Enabled:    true,
			Order:      0,
			Settings:   map[string]any{"heading": "Hello"},
			Animations: animations,
		},
	}

	units := dispatcher.Plan(list, PlanOptions{})
	if units[0].Settings["heading"] != "Hello" {
		t.Fatalf("settings not forwarded: %v", units[0].Settings)
	}
	if units[0].Animations == nil || units[0].Animations.Entrance != "slide-up" {
		t.Fatalf("animations not forwarded: %+v", units[0].Animations)
	}
	if units[0].Title != "Welcome" {
		t.Fatalf("title not forwarded: %s", units[0].Title)
	}
}

func TestPlanRespectsBreakpointVisibility(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	hidden := false
	list := []layout.Section{
		{
			ID:      "desktop-only",
			Type:    sections.TypeBanner,
			Enabled: true,
			Order:   0,
			Responsive: map[string]layout.ResponsiveRule{
				layout.BreakpointMobile: {Visible: &hidden},
			},
		},
		{ID: "everywhere", Type: sections.TypeHero, Enabled: true, Order: 1},
	}

	mobile := dispatcher.Plan(list, PlanOptions{Breakpoint: layout.BreakpointMobile})
	if len(mobile) != 1 || mobile[0].SectionID != "everywhere" {
		t.Fatalf("mobile override ignored: %v", planIDs(mobile))
	}

	desktop := dispatcher.Plan(list, PlanOptions{Breakpoint: layout.BreakpointDesktop})
	if len(desktop) != 2 {
		t.Fatalf("desktop plan missing sections: %v", planIDs(desktop))
	}

	all := dispatcher.Plan(list, PlanOptions{})
	if len(all) != 2 {
		t.Fatalf("no-breakpoint plan missing sections: %v", planIDs(all))
	}
}

func TestPlanRendersMarkdownTextSections(t *testing.T) {
	dispatcher := NewDispatcher(sections.NewBuiltinRegistry())

	list := []layout.Section{
		{
			ID:      "about",
			Type:    sections.TypeText,
			Enabled: true,
			Order:   0,
			Settings: map[string]any{
				"content": "# About us\n\nWe sell things.",
				"format":  "markdown",
			},
		},
		{
			ID:      "raw",
			Type:    sections.TypeText,
			Enabled: true,
			Order:   1,
			Settings: map[string]any{
				"content": "<p>plain html</p>",
				"format":  "html",
			},
		},
	}

	units := dispatcher.Plan(list, PlanOptions{})
	if !strings.Contains(string(units[0].BodyHTML), "<h1") {
		t.Fatalf("markdown body not rendered: %q", units[0].BodyHTML)
	}
	if units[1].BodyHTML != nil {
		t.Fatalf("non-markdown text section got a rendered body: %q", units[1].BodyHTML)
	}
}

func TestMarkdownRendererGFM(t *testing.T) {
	renderer := NewMarkdownRenderer()

	out, err := renderer.Render([]byte("visit ~~old~~ **new** store"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<del>") || !strings.Contains(string(out), "<strong>") {
		t.Fatalf("GFM extensions not applied: %q", out)
	}
}
