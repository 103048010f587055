package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// DefaultTrailLimit bounds the audit trail ring buffer.
const DefaultTrailLimit = 50

// Entry is one observational audit record. Entries are displayed in the
// management UI and never consulted by engine logic.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	SectionID string    `json:"sectionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// Trail is an append-only ring buffer of the most recent audit entries.
type Trail struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
	now     func() time.Time
	id      func() uuid.UUID
}

// TrailOption customises a Trail.
type TrailOption func(*Trail)

// TrailWithClock overrides the trail's time source.
func TrailWithClock(clock interfaces.Clock) TrailOption {
	return func(t *Trail) {
		if clock != nil {
			t.now = clock
		}
	}
}

// TrailWithIDGenerator overrides the trail's entry id generator.
func TrailWithIDGenerator(generator func() uuid.UUID) TrailOption {
	return func(t *Trail) {
		if generator != nil {
			t.id = generator
		}
	}
}

// NewTrail constructs an audit trail bounded to the given number of entries.
// Non-positive limits fall back to DefaultTrailLimit.
func NewTrail(limit int, opts ...TrailOption) *Trail {
	if limit <= 0 {
		limit = DefaultTrailLimit
	}
	t := &Trail{
		limit: limit,
		now:   time.Now,
		id:    uuid.New,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record appends an entry, evicting the oldest once the limit is reached.
// Action is a free-form tag such as "section.add" or "bulk.delete".
func (t *Trail) Record(action, sectionID, details string) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := Entry{
		ID:        t.id(),
		Action:    action,
		SectionID: sectionID,
		Timestamp: t.now(),
		Details:   details,
	}
	if len(t.entries) >= t.limit {
		t.entries = t.entries[1:]
	}
	t.entries = append(t.entries, entry)
	return entry
}

// Entries returns the recorded entries, oldest first.
func (t *Trail) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
