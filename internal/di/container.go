// Package di wires the storefront module: storage, registry, layout store,
// history, and render dispatcher, assembled from the runtime configuration.
package di

import (
	"context"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-storefront/internal/history"
	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/internal/logging/gologger"
	"github.com/goliatone/go-storefront/internal/render"
	"github.com/goliatone/go-storefront/internal/runtimeconfig"
	"github.com/goliatone/go-storefront/internal/sections"
	"github.com/goliatone/go-storefront/internal/storage"
	"github.com/goliatone/go-storefront/internal/templates"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	bunDB          *bun.DB
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer

	documentRepo layout.DocumentRepository
	registry     *sections.Registry
	store        layout.Store
	history      *history.History
	trail        *history.Trail
	dispatcher   *render.Dispatcher

	syncer   interfaces.RemoteSyncer
	notifier interfaces.Notifier
	catalog  interfaces.CatalogService
	banners  interfaces.BannerService
}

// Option overrides container wiring.
type Option func(*Container)

// WithLoggerProvider injects the host logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithDocumentRepository overrides the layout document repository.
func WithDocumentRepository(repo layout.DocumentRepository) Option {
	return func(c *Container) {
		if repo != nil {
			c.documentRepo = repo
		}
	}
}

// WithRegistry overrides the section registry.
func WithRegistry(registry *sections.Registry) Option {
	return func(c *Container) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithDB injects an already-open database handle.
func WithDB(db *bun.DB) Option {
	return func(c *Container) {
		if db != nil {
			c.bunDB = db
		}
	}
}

// WithCache injects the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithRemoteSyncer wires the best-effort remote persistence target.
func WithRemoteSyncer(syncer interfaces.RemoteSyncer) Option {
	return func(c *Container) {
		c.syncer = syncer
	}
}

// WithNotifier wires the persistence failure notifier.
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(c *Container) {
		c.notifier = notifier
	}
}

// WithCatalogService wires the host catalog used to hydrate product and
// category driven render units.
func WithCatalogService(catalog interfaces.CatalogService) Option {
	return func(c *Container) {
		c.catalog = catalog
	}
}

// WithBannerService wires the host banner source used to hydrate slider and
// side-banner render units.
func WithBannerService(banners interfaces.BannerService) Option {
	return func(c *Container) {
		c.banners = banners
	}
}

// NewContainer validates the configuration and assembles the module.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if c.registry == nil {
		c.registry = sections.NewBuiltinRegistry()
	}
	c.configureCacheDefaults()
	if err := c.configureRepository(); err != nil {
		return nil, err
	}
	c.configureServices()
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if c.config.Logging.Provider != "gologger" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.config.Logging.Level,
		Format:    c.config.Logging.Format,
		AddSource: c.config.Logging.AddSource,
		Focus:     c.config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.config.Features.Cache {
		return
	}
	if c.cacheService == nil {
		if service, err := repocache.NewCacheService(repocache.DefaultConfig()); err == nil {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepository() error {
	if c.documentRepo != nil {
		return nil
	}

	switch c.config.Storage.Driver {
	case "", "memory":
		c.documentRepo = layout.NewMemoryDocumentRepository()
		return nil
	default:
		if c.bunDB == nil {
			db, err := storage.Open(c.config.Storage)
			if err != nil {
				return err
			}
			c.bunDB = db
		}
		if err := storage.EnsureSchema(context.Background(), c.bunDB); err != nil {
			return err
		}
		c.documentRepo = layout.NewBunDocumentRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return nil
	}
}

func (c *Container) configureServices() {
	storeOpts := []layout.ServiceOption{
		layout.WithRegistry(c.registry),
		layout.WithLogger(logging.LayoutLogger(c.loggerProvider)),
		layout.WithDocumentKey(c.config.LayoutKey),
	}
	if c.config.Autosave.Enabled {
		storeOpts = append(storeOpts, layout.WithDebounce(c.config.Autosave.Debounce))
	} else {
		storeOpts = append(storeOpts, layout.WithDebounce(0))
	}
	if c.config.Features.Templates {
		storeOpts = append(storeOpts, layout.WithDefaultSections(templates.DefaultSections))
	}
	if c.config.Features.RemoteSync && c.syncer != nil {
		storeOpts = append(storeOpts, layout.WithRemoteSyncer(c.syncer))
	}
	if c.notifier != nil {
		storeOpts = append(storeOpts, layout.WithNotifier(c.notifier))
	}

	c.store = layout.NewStore(c.documentRepo, storeOpts...)
	c.history = history.New(c.config.History.Depth)
	c.trail = history.NewTrail(c.config.History.TrailLimit)
	dispatcherOpts := []render.DispatcherOption{
		render.WithLogger(logging.RenderLogger(c.loggerProvider)),
	}
	if c.catalog != nil {
		dispatcherOpts = append(dispatcherOpts, render.WithCatalog(c.catalog))
	}
	if c.banners != nil {
		dispatcherOpts = append(dispatcherOpts, render.WithBanners(c.banners))
	}
	c.dispatcher = render.NewDispatcher(c.registry, dispatcherOpts...)
}

// Config returns the validated configuration.
func (c *Container) Config() runtimeconfig.Config { return c.config }

// LoggerProvider returns the wired logger provider, possibly nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// DB returns the database handle, nil for memory storage.
func (c *Container) DB() *bun.DB { return c.bunDB }

// DocumentRepository returns the layout document repository.
func (c *Container) DocumentRepository() layout.DocumentRepository { return c.documentRepo }

// Registry returns the section registry.
func (c *Container) Registry() *sections.Registry { return c.registry }

// Store returns the layout store.
func (c *Container) Store() layout.Store { return c.store }

// History returns the undo/redo history.
func (c *Container) History() *history.History { return c.history }

// Trail returns the audit trail.
func (c *Container) Trail() *history.Trail { return c.trail }

// Dispatcher returns the render dispatcher.
func (c *Container) Dispatcher() *render.Dispatcher { return c.dispatcher }
