package layout

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-storefront/internal/sections"
)

// Animations re-exports the registry animation hint so callers work with a
// single type across packages.
type Animations = sections.Animations

// Breakpoint identifiers used by responsive overrides.
const (
	BreakpointDesktop = "desktop"
	BreakpointTablet  = "tablet"
	BreakpointMobile  = "mobile"
)

// ResponsiveRule overrides visibility and width for one breakpoint.
type ResponsiveRule struct {
	Visible *bool `json:"visible,omitempty"`
	Width   *int  `json:"width,omitempty"`
}

// Section is the unit of page composition. Settings is an open bag whose
// valid shape is defined per Type by the editor and renderer; the engine
// preserves its contents verbatim across structural mutations.
type Section struct {
	ID         string                    `json:"id"`
	Type       string                    `json:"type"`
	Title      string                    `json:"title"`
	Enabled    bool                      `json:"enabled"`
	Order      int                       `json:"order"`
	Settings   map[string]any            `json:"settings,omitempty"`
	Animations *Animations               `json:"animations,omitempty"`
	Responsive map[string]ResponsiveRule `json:"responsive,omitempty"`
}

// Document is the persisted layout envelope: the whole ordered collection
// of sections for one store, keyed by the document key the host configures.
type Document struct {
	bun.BaseModel `bun:"table:layout_documents,alias:ld"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Sections  []Section `bun:"sections,type:jsonb,notnull" json:"sections"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// CloneSection deep-copies a section, including its settings bag and
// responsive overrides.
func CloneSection(src Section) Section {
	cloned := src
	cloned.Settings = sections.CloneSettings(src.Settings)
	if src.Animations != nil {
		animations := *src.Animations
		cloned.Animations = &animations
	}
	if src.Responsive != nil {
		cloned.Responsive = make(map[string]ResponsiveRule, len(src.Responsive))
		for breakpoint, rule := range src.Responsive {
			cloned.Responsive[breakpoint] = cloneRule(rule)
		}
	}
	return cloned
}

// CloneSections deep-copies a whole collection.
func CloneSections(src []Section) []Section {
	if src == nil {
		return nil
	}
	cloned := make([]Section, len(src))
	for i, section := range src {
		cloned[i] = CloneSection(section)
	}
	return cloned
}

func cloneRule(src ResponsiveRule) ResponsiveRule {
	cloned := ResponsiveRule{}
	if src.Visible != nil {
		visible := *src.Visible
		cloned.Visible = &visible
	}
	if src.Width != nil {
		width := *src.Width
		cloned.Width = &width
	}
	return cloned
}

func cloneDocument(src *Document) *Document {
	if src == nil {
		return nil
	}
	cloned := *src
	cloned.Sections = CloneSections(src.Sections)
	return &cloned
}
