package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-slug"
)

// ErrImportInvalid is returned when an import payload cannot be parsed as a
// JSON array of sections or the {sections: [...]} envelope. The import is
// atomic: nothing is appended on failure.
var ErrImportInvalid = errors.New("layout: import document invalid")

// ExportMetadata is the envelope attached to whole-theme exports.
type ExportMetadata struct {
	Name              string    `json:"name"`
	Created           time.Time `json:"created"`
	Version           string    `json:"version"`
	ComponentsCount   int       `json:"componentsCount"`
	EnabledComponents int       `json:"enabledComponents"`
}

// ExportDocument is the whole-theme export variant.
type ExportDocument struct {
	Sections []Section      `json:"sections"`
	Metadata ExportMetadata `json:"metadata"`
}

// Export serializes the full collection, or only the given ids when any are
// supplied, as a bare JSON array. Output round-trips through Import without
// loss of type, title, enabled state, settings, or animations.
func (s *service) Export(ids ...string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.sections
	if len(ids) > 0 {
		selected = make([]Section, 0, len(ids))
		for _, id := range ids {
			if idx := s.indexLocked(id); idx >= 0 {
				selected = append(selected, s.sections[idx])
			}
		}
	}
	return marshalSections(selected)
}

// ExportTheme serializes the full collection wrapped in the metadata
// envelope used by whole-theme exports.
func (s *service) ExportTheme(name, version string) ([]byte, error) {
	s.mu.Lock()
	snapshot := CloneSections(s.sections)
	s.mu.Unlock()

	enabled := 0
	for _, section := range snapshot {
		if section.Enabled {
			enabled++
		}
	}

	document := ExportDocument{
		Sections: snapshot,
		Metadata: ExportMetadata{
			Name:              name,
			Created:           s.now().UTC(),
			Version:           version,
			ComponentsCount:   len(snapshot),
			EnabledComponents: enabled,
		},
	}
	return json.MarshalIndent(document, "", "  ")
}

// Import parses a JSON array of section-shaped objects (or the superset
// {sections: [...]} envelope) and appends each with a fresh id and an Order
// equal to the then-current collection length. Imported ids are never
// trusted. Malformed payloads fail the whole import with ErrImportInvalid;
// well-formed entries that only partially match the section shape are
// accepted best-effort.
func (s *service) Import(payload []byte) ([]Section, error) {
	incoming, err := decodeImport(payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appended := make([]Section, 0, len(incoming))
	for _, section := range incoming {
		cloned := CloneSection(section)
		cloned.ID = s.id(cloned.Type)
		cloned.Order = len(s.sections)
		s.sections = append(s.sections, cloned)
		appended = append(appended, CloneSection(cloned))
	}
	if len(appended) > 0 {
		s.scheduleAutosaveLocked()
	}
	return appended, nil
}

func decodeImport(payload []byte) ([]Section, error) {
	var list []Section
	if err := json.Unmarshal(payload, &list); err == nil {
		// A bare null token unmarshals into a nil slice without error; treat
		// it like any other non-array payload.
		if list == nil {
			return nil, fmt.Errorf("%w: expected a JSON array of sections", ErrImportInvalid)
		}
		return list, nil
	}

	var envelope struct {
		Sections []Section `json:"sections"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Sections == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of sections", ErrImportInvalid)
	}
	return envelope.Sections, nil
}

func marshalSections(list []Section) ([]byte, error) {
	if list == nil {
		list = []Section{}
	}
	return json.MarshalIndent(list, "", "  ")
}

// ExportFilename builds the conventional download name for an export: the
// slugified layout name plus the ISO date.
func ExportFilename(name string, when time.Time) string {
	key, err := slug.Normalize(name)
	if err != nil || key == "" {
		key = "layout"
	}
	return fmt.Sprintf("%s-%s.json", key, when.Format("2006-01-02"))
}
