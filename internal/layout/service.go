package layout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/internal/sections"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// DefaultDocumentKey is the storage key the persisted layout lives under.
const DefaultDocumentKey = "store-page-layout"

// DefaultDebounce is the autosave quiet period applied when the host does
// not override it.
const DefaultDebounce = time.Second

// Store owns the canonical ordered section collection and its persistence
// lifecycle. All mutations are synchronous against the in-memory collection;
// persistence is decoupled behind the debounced autosave and Save/Load.
//
// Mutations never fail for data-shape reasons: operations on an absent id
// degrade to no-ops so the UI can race a delete against a duplicate click.
// Add, Update, and Remove do not renormalize Order; Reorder is the only
// operation that re-stamps Order to match array position, and callers of
// ReplaceAll are responsible for supplying contiguous Order values.
type Store interface {
	Sections() []Section
	Section(id string) (Section, bool)
	Len() int

	ReplaceAll(list []Section)
	Add(section Section)
	CreateSection(sectionType string) Section
	Update(id string, patch SectionPatch)
	Remove(id string)
	Reorder(ordered []Section)

	BulkSetEnabled(ids []string, enabled bool) int
	BulkDelete(ids []string) int
	BulkDuplicate(ids []string) []Section
	ApplyTemplate(list []Section)
	AppendFromTemplate(section Section) Section

	Export(ids ...string) ([]byte, error)
	ExportTheme(name, version string) ([]byte, error)
	Import(payload []byte) ([]Section, error)

	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Close()
}

// SectionPatch shallow-merges top-level fields into a section. Nil fields
// are left untouched; a non-nil Settings, Animations, or Responsive value
// replaces that sub-object wholesale without disturbing its siblings.
type SectionPatch struct {
	Type       *string
	Title      *string
	Enabled    *bool
	Order      *int
	Settings   map[string]any
	Animations *Animations
	Responsive map[string]ResponsiveRule
}

// IDGenerator produces collision-free section identifiers for a type.
type IDGenerator func(sectionType string) string

// ServiceOption configures layout store behaviour.
type ServiceOption func(*service)

// WithClock overrides the time source used by the store.
func WithClock(clock interfaces.Clock) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the section ID generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithRegistry injects the section registry used for default construction.
func WithRegistry(registry *sections.Registry) ServiceOption {
	return func(s *service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithLogger wires the store logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDocumentKey overrides the storage key the layout persists under.
func WithDocumentKey(key string) ServiceOption {
	return func(s *service) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDebounce sets the autosave quiet period. Zero or negative disables
// the debounced autosave entirely; explicit Save still works.
func WithDebounce(debounce time.Duration) ServiceOption {
	return func(s *service) {
		s.debounce = debounce
	}
}

// WithDefaultSections provides the baseline layout installed when Load
// finds no persisted document.
func WithDefaultSections(defaults func() []Section) ServiceOption {
	return func(s *service) {
		if defaults != nil {
			s.defaults = defaults
		}
	}
}

// WithRemoteSyncer wires the best-effort secondary persistence target.
func WithRemoteSyncer(syncer interfaces.RemoteSyncer) ServiceOption {
	return func(s *service) {
		if syncer != nil {
			s.syncer = syncer
		}
	}
}

// WithNotifier wires the user-facing persistence failure hook.
func WithNotifier(notifier interfaces.Notifier) ServiceOption {
	return func(s *service) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

type service struct {
	mu       sync.Mutex
	sections []Section
	timer    *time.Timer

	repo     DocumentRepository
	registry *sections.Registry
	logger   interfaces.Logger
	syncer   interfaces.RemoteSyncer
	notifier interfaces.Notifier
	defaults func() []Section

	key      string
	debounce time.Duration
	now      func() time.Time
	id       IDGenerator
}

// NewStore constructs a layout store over the given document repository.
func NewStore(repo DocumentRepository, opts ...ServiceOption) Store {
	s := &service{
		repo:     repo,
		registry: sections.NewBuiltinRegistry(),
		logger:   logging.NoOp(),
		defaults: func() []Section { return nil },
		key:      DefaultDocumentKey,
		debounce: DefaultDebounce,
		now:      time.Now,
	}
	s.id = func(sectionType string) string {
		return defaultSectionID(sectionType, s.now())
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func defaultSectionID(sectionType string, now time.Time) string {
	if sectionType == "" {
		sectionType = "section"
	}
	return fmt.Sprintf("%s-%d-%s", sectionType, now.UnixNano(), uuid.NewString()[:8])
}

func (s *service) Sections() []Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneSections(s.sections)
}

func (s *service) Section(id string) (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return Section{}, false
	}
	return CloneSection(s.sections[idx]), true
}

func (s *service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sections)
}

// ReplaceAll installs an entirely new ordered collection verbatim. The
// caller owns the Order invariant; the store does not renumber on purpose,
// since undo/redo restores and imports rely on faithful replacement.
func (s *service) ReplaceAll(list []Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections = CloneSections(list)
	s.scheduleAutosaveLocked()
}

// Add appends the section verbatim. Duplicate ids are not checked; callers
// must generate collision-free ids, typically via CreateSection.
func (s *service) Add(section Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections = append(s.sections, CloneSection(section))
	s.scheduleAutosaveLocked()
}

// CreateSection builds a section of the given type from registry defaults,
// assigns it a fresh id and an Order equal to the current collection
// length, appends it, and returns a copy.
func (s *service) CreateSection(sectionType string) Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	descriptor := s.registry.Describe(sectionType)
	section := Section{
		ID:       s.id(sectionType),
		Type:     sectionType,
		Title:    descriptor.DefaultTitle,
		Enabled:  true,
		Order:    len(s.sections),
		Settings: descriptor.DefaultSettings,
	}
	if descriptor.DefaultAnimations != nil {
		animations := *descriptor.DefaultAnimations
		section.Animations = &animations
	}

	s.sections = append(s.sections, section)
	s.scheduleAutosaveLocked()
	return CloneSection(section)
}

// Update shallow-merges the patch into the matching section. Absent ids are
// a no-op. Changing Type re-seeds Settings from the new type's defaults,
// overlaid with any Settings supplied in the same patch.
func (s *service) Update(id string, patch SectionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.logger.Debug("layout.update.missing", "section_id", id)
		return
	}
	section := &s.sections[idx]

	if patch.Type != nil && *patch.Type != section.Type {
		section.Type = *patch.Type
		merged := s.registry.Describe(*patch.Type).DefaultSettings
		if merged == nil {
			merged = map[string]any{}
		}
		for key, value := range sections.CloneSettings(patch.Settings) {
			merged[key] = value
		}
		section.Settings = merged
	} else if patch.Settings != nil {
		section.Settings = sections.CloneSettings(patch.Settings)
	}

	if patch.Title != nil {
		section.Title = *patch.Title
	}
	if patch.Enabled != nil {
		section.Enabled = *patch.Enabled
	}
	if patch.Order != nil {
		section.Order = *patch.Order
	}
	if patch.Animations != nil {
		animations := *patch.Animations
		section.Animations = &animations
	}
	if patch.Responsive != nil {
		cloned := make(map[string]ResponsiveRule, len(patch.Responsive))
		for breakpoint, rule := range patch.Responsive {
			cloned[breakpoint] = cloneRule(rule)
		}
		section.Responsive = cloned
	}

	s.scheduleAutosaveLocked()
}

// Remove filters the section out. Absent ids are a no-op (idempotent-delete
// semantics).
func (s *service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
	s.scheduleAutosaveLocked()
}

// Reorder installs the supplied list and re-stamps every section's Order to
// its index. This is the only operation that restores the order-equals-index
// invariant.
func (s *service) Reorder(ordered []Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := CloneSections(ordered)
	for i := range cloned {
		cloned[i].Order = i
	}
	s.sections = cloned
	s.scheduleAutosaveLocked()
}

// Load reads the persisted document, installing and immediately persisting
// the default layout when none exists yet.
func (s *service) Load(ctx context.Context) error {
	document, err := s.repo.Get(ctx, s.key)
	if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		s.mu.Lock()
		s.sections = CloneSections(s.defaults())
		s.mu.Unlock()
		s.logger.Info("layout.load.defaults_installed", "key", s.key)
		return s.Save(ctx)
	}

	s.mu.Lock()
	s.sections = CloneSections(document.Sections)
	s.mu.Unlock()
	s.logger.Debug("layout.load.ok", "key", s.key, "sections", len(document.Sections))
	return nil
}

// Save persists the current collection immediately, bypassing the debounce.
// A pending debounced save is left alone; it will fire afterwards and
// re-persist identical state harmlessly. Failures are reported through the
// logger and notifier but never roll back the in-memory collection.
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := CloneSections(s.sections)
	key := s.key
	s.mu.Unlock()

	document := &Document{
		Key:       key,
		Sections:  snapshot,
		UpdatedAt: s.now(),
	}
	if _, err := s.repo.Put(ctx, document); err != nil {
		s.logger.Error("layout.save.failed", "key", key, "error", err)
		if s.notifier != nil {
			s.notifier.NotifySaveFailed(key, err)
		}
		return err
	}

	s.logger.Debug("layout.save.ok", "key", key, "sections", len(snapshot))
	s.remoteSync(key, snapshot)
	return nil
}

// Close stops the autosave timer, flushing a pending debounce so edits made
// just before the editing surface closes still persist.
func (s *service) Close() {
	s.mu.Lock()
	pending := s.timer != nil && s.timer.Stop()
	s.timer = nil
	s.mu.Unlock()

	if pending {
		if err := s.Save(context.Background()); err != nil {
			s.logger.Warn("layout.close.flush_failed", "error", err)
		}
	}
}

// scheduleAutosaveLocked restarts the debounce timer. A rapid burst of
// edits produces exactly one save at the end of the burst. Callers must
// hold s.mu.
func (s *service) scheduleAutosaveLocked() {
	if s.debounce <= 0 {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Save(context.Background()); err != nil {
			s.logger.Warn("layout.autosave.failed", "error", err)
		}
	})
}

// remoteSync mirrors the persisted payload to the secondary target on a
// best-effort basis. It never blocks or fails the local save path.
func (s *service) remoteSync(key string, snapshot []Section) {
	if s.syncer == nil {
		return
	}
	payload, err := marshalSections(snapshot)
	if err != nil {
		s.logger.Warn("layout.remote_sync.encode_failed", "error", err)
		return
	}
	go func() {
		if err := s.syncer.Sync(context.Background(), key, payload); err != nil {
			s.logger.Warn("layout.remote_sync.failed", "key", key, "error", err)
		}
	}()
}

func (s *service) indexLocked(id string) int {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return i
		}
	}
	return -1
}
