package layout

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestStore(t)
	hero := source.CreateSection("hero")
	products := source.CreateSection("products")
	disabled := false
	source.Update(products.ID, SectionPatch{Enabled: &disabled})

	payload, err := source.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target := newTestStore(t)
	appended, err := target.Import(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appended) != 2 {
		t.Fatalf("expected 2 imported sections, got %d", len(appended))
	}

	got := target.Sections()
	if got[0].Type != hero.Type || got[0].Title != hero.Title {
		t.Fatalf("imported section lost fields: %+v", got[0])
	}
	if got[1].Enabled {
		t.Fatal("imported section lost its disabled state")
	}
	if got[0].Settings["heading"] != hero.Settings["heading"] {
		t.Fatalf("imported section lost settings: %v", got[0].Settings)
	}
}

func TestImportAssignsFreshIDsAndOrders(t *testing.T) {
	store := newTestStore(t)
	existing := store.CreateSection("banner")

	payload := []byte(`[
		{"id": "imported-1", "type": "hero", "title": "A", "enabled": true, "order": 40},
		{"id": "imported-1", "type": "products", "title": "B", "enabled": true, "order": 40}
	]`)

	appended, err := store.Import(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{existing.ID: true}
	for i, section := range appended {
		if section.ID == "imported-1" {
			t.Fatal("imported id was trusted")
		}
		if seen[section.ID] {
			t.Fatalf("duplicate id after import: %s", section.ID)
		}
		seen[section.ID] = true
		if want := 1 + i; section.Order != want {
			t.Fatalf("section %d Order=%d, want %d", i, section.Order, want)
		}
	}
}

func TestImportAcceptsSectionsEnvelope(t *testing.T) {
	store := newTestStore(t)

	payload := []byte(`{
		"sections": [{"type": "hero", "title": "Wrapped", "enabled": true}],
		"metadata": {"name": "Theme", "componentsCount": 1}
	}`)

	appended, err := store.Import(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appended) != 1 || appended[0].Title != "Wrapped" {
		t.Fatalf("envelope sections not imported: %+v", appended)
	}
}

func TestImportMalformedPayloadIsAtomic(t *testing.T) {
	store := newTestStore(t)
	store.CreateSection("hero")
	before := store.Sections()

	for _, payload := range [][]byte{
		[]byte(`{invalid json`),
		[]byte(`"just a string"`),
		[]byte(`null`),
		[]byte(`{"notSections": []}`),
		[]byte(`{"sections": null}`),
	} {
		if _, err := store.Import(payload); !errors.Is(err, ErrImportInvalid) {
			t.Fatalf("payload %q: expected ErrImportInvalid, got %v", payload, err)
		}
	}

	if !reflect.DeepEqual(store.Sections(), before) {
		t.Fatal("failed import modified the collection")
	}
}

func TestExportSubsetSkipsAbsentIDs(t *testing.T) {
	store := newTestStore(t)
	a := store.CreateSection("hero")
	store.CreateSection("products")
	c := store.CreateSection("newsletter")

	payload, err := store.Export(a.ID, "missing", c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var exported []Section
	if err := json.Unmarshal(payload, &exported); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if !reflect.DeepEqual(sectionIDs(exported), []string{a.ID, c.ID}) {
		t.Fatalf("unexpected subset: %v", sectionIDs(exported))
	}
}

func TestExportEmptyCollectionIsEmptyArray(t *testing.T) {
	store := newTestStore(t)

	payload, err := store.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var exported []Section
	if err := json.Unmarshal(payload, &exported); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(exported) != 0 {
		t.Fatalf("expected empty array, got %d entries", len(exported))
	}
}

func TestExportThemeEnvelopeMetadata(t *testing.T) {
	store := newTestStore(t)
	store.CreateSection("hero")
	products := store.CreateSection("products")
	disabled := false
	store.Update(products.ID, SectionPatch{Enabled: &disabled})

	payload, err := store.ExportTheme("Summer Theme", "2.1.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var document ExportDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		t.Fatalf("theme export is not an envelope: %v", err)
	}
	if document.Metadata.Name != "Summer Theme" || document.Metadata.Version != "2.1.0" {
		t.Fatalf("unexpected metadata: %+v", document.Metadata)
	}
	if document.Metadata.ComponentsCount != 2 || document.Metadata.EnabledComponents != 1 {
		t.Fatalf("unexpected component counts: %+v", document.Metadata)
	}
	if !document.Metadata.Created.Equal(fixedClock()()) {
		t.Fatalf("unexpected created timestamp: %s", document.Metadata.Created)
	}
	if len(document.Sections) != 2 {
		t.Fatalf("expected 2 sections in envelope, got %d", len(document.Sections))
	}
}

func TestExportFilename(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := ExportFilename("My Store Layout", when); got != "my-store-layout-2026-03-01.json" {
		t.Fatalf("unexpected filename: %s", got)
	}
	if got := ExportFilename("", when); got != "layout-2026-03-01.json" {
		t.Fatalf("unexpected fallback filename: %s", got)
	}
}
