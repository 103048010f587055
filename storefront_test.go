package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-storefront/internal/layout"
)

func newTestModule(t *testing.T) *Module {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Autosave.Enabled = false

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(module.Close)
	return module
}

func TestModuleLoadsDefaultTemplateLayout(t *testing.T) {
	module := newTestModule(t)

	store := module.Layout()
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("expected the default template to be installed on first load")
	}

	units := module.Render().Plan(store.Sections(), PlanOptions{})
	if len(units) == 0 {
		t.Fatal("expected a non-empty render plan for the default layout")
	}
}

func TestModuleEditUndoRedoFlow(t *testing.T) {
	module := newTestModule(t)
	store := module.Layout()
	historyLog := module.History()

	hero := store.CreateSection("hero")

	historyLog.RecordBeforeMutation(store.Sections())
	store.Remove(hero.ID)
	if store.Len() != 0 {
		t.Fatalf("expected empty layout after remove, len=%d", store.Len())
	}

	snapshot, ok := historyLog.Undo(store.Sections())
	if !ok {
		t.Fatal("expected an undo snapshot")
	}
	store.ReplaceAll(snapshot)
	if _, ok := store.Section(hero.ID); !ok {
		t.Fatal("undo did not restore the removed section")
	}

	redo, ok := historyLog.Redo(store.Sections())
	if !ok {
		t.Fatal("expected a redo snapshot")
	}
	store.ReplaceAll(redo)
	if store.Len() != 0 {
		t.Fatalf("redo did not reapply the removal, len=%d", store.Len())
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if _, err := New(cfg); !errors.Is(err, ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestModuleWithRepositoryOverride(t *testing.T) {
	repo := layout.NewMemoryDocumentRepository()

	cfg := DefaultConfig()
	cfg.Autosave.Enabled = false
	cfg.Features.Templates = false

	module, err := New(cfg, WithDocumentRepository(repo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer module.Close()

	store := module.Layout()
	store.CreateSection("hero")
	if err := store.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	document, err := repo.Get(context.Background(), cfg.LayoutKey)
	if err != nil {
		t.Fatalf("override repository was not used: %v", err)
	}
	if len(document.Sections) != 1 {
		t.Fatalf("unexpected persisted sections: %d", len(document.Sections))
	}
}

func TestModuleTemplatesCatalog(t *testing.T) {
	module := newTestModule(t)

	catalog, err := module.Templates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatal("expected builtin templates")
	}
}
