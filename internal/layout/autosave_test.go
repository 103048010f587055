package layout

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingRepository struct {
	mu    sync.Mutex
	inner DocumentRepository
	puts  int
	last  *Document
}

func newCountingRepository() *countingRepository {
	return &countingRepository{inner: NewMemoryDocumentRepository()}
}

func (c *countingRepository) Get(ctx context.Context, key string) (*Document, error) {
	return c.inner.Get(ctx, key)
}

func (c *countingRepository) Put(ctx context.Context, document *Document) (*Document, error) {
	c.mu.Lock()
	c.puts++
	c.last = cloneDocument(document)
	c.mu.Unlock()
	return c.inner.Put(ctx, document)
}

func (c *countingRepository) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *countingRepository) snapshot() (int, *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts, c.last
}

func TestAutosaveCoalescesRapidEdits(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo,
		WithIDGenerator(sequentialIDs()),
		WithDebounce(50*time.Millisecond),
	)

	created := store.CreateSection("hero")
	for i := 0; i < 4; i++ {
		title := "Draft"
		store.Update(created.ID, SectionPatch{Title: &title})
	}
	final := "Final Title"
	store.Update(created.ID, SectionPatch{Title: &final})

	time.Sleep(200 * time.Millisecond)

	puts, last := repo.snapshot()
	if puts != 1 {
		t.Fatalf("expected exactly one save after the burst, got %d", puts)
	}
	if last == nil || len(last.Sections) != 1 || last.Sections[0].Title != "Final Title" {
		t.Fatalf("persisted state is not the final state: %+v", last)
	}
}

func TestAutosaveRestartsQuietPeriodPerEdit(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo,
		WithIDGenerator(sequentialIDs()),
		WithDebounce(80*time.Millisecond),
	)

	created := store.CreateSection("hero")
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		title := "Edit"
		store.Update(created.ID, SectionPatch{Title: &title})
	}

	// Each edit landed inside the quiet period, so nothing saved yet.
	if puts, _ := repo.snapshot(); puts != 0 {
		t.Fatalf("save fired before the quiet period elapsed, puts=%d", puts)
	}

	time.Sleep(200 * time.Millisecond)
	if puts, _ := repo.snapshot(); puts != 1 {
		t.Fatalf("expected one save after the quiet period, got %d", puts)
	}
}

func TestExplicitSaveBypassesDebounce(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo,
		WithIDGenerator(sequentialIDs()),
		WithDebounce(time.Hour),
	)

	store.CreateSection("hero")
	if err := store.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if puts, _ := repo.snapshot(); puts != 1 {
		t.Fatalf("explicit save did not persist immediately, puts=%d", puts)
	}
}

func TestExplicitSaveLeavesPendingTimerToFireHarmlessly(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo,
		WithIDGenerator(sequentialIDs()),
		WithDebounce(50*time.Millisecond),
	)

	store.CreateSection("hero")
	if err := store.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puts, _ := repo.snapshot(); puts != 1 {
		t.Fatalf("explicit save did not persist immediately, puts=%d", puts)
	}

	// The debounce timer started by the edit is still pending; it fires
	// after the quiet period and re-persists identical state.
	time.Sleep(200 * time.Millisecond)

	puts, last := repo.snapshot()
	if puts != 2 {
		t.Fatalf("expected the pending timer to fire once more, puts=%d", puts)
	}
	if last == nil || len(last.Sections) != 1 || last.Sections[0].Type != "hero" {
		t.Fatalf("timer write diverged from the saved state: %+v", last)
	}
}

func TestCloseFlushesPendingAutosave(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo,
		WithIDGenerator(sequentialIDs()),
		WithDebounce(time.Hour),
	)

	store.CreateSection("hero")
	store.Close()

	puts, last := repo.snapshot()
	if puts != 1 {
		t.Fatalf("pending edit lost on close, puts=%d", puts)
	}
	if last == nil || len(last.Sections) != 1 {
		t.Fatalf("flushed document incomplete: %+v", last)
	}
}

func TestCloseWithoutPendingEditsDoesNotSave(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo, WithDebounce(50*time.Millisecond))

	store.Close()

	if puts, _ := repo.snapshot(); puts != 0 {
		t.Fatalf("close saved with no pending edits, puts=%d", puts)
	}
}

func TestDisabledDebounceNeverAutosaves(t *testing.T) {
	repo := newCountingRepository()
	store := NewStore(repo, WithIDGenerator(sequentialIDs()), WithDebounce(0))

	store.CreateSection("hero")
	time.Sleep(50 * time.Millisecond)

	if puts, _ := repo.snapshot(); puts != 0 {
		t.Fatalf("autosave fired with debounce disabled, puts=%d", puts)
	}
}
