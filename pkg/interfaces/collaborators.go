package interfaces

import (
	"context"
	"io"
	"time"
)

// RemoteSyncer mirrors a persisted layout document to a secondary target.
// Implementations are best-effort: the layout store invokes Sync after the
// local write succeeds and never fails the local save path on a sync error.
type RemoteSyncer interface {
	Sync(ctx context.Context, key string, payload []byte) error
}

// Notifier receives user-facing persistence outcomes. The engine reports
// failures through this hook instead of surfacing them to callers, keeping
// the in-memory collection authoritative for the session.
type Notifier interface {
	NotifySaveFailed(key string, err error)
}

// CatalogItem is the shape returned by the host catalog service for
// category and product driven sections.
type CatalogItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// CatalogService supplies category/product data to section renderers. The
// layout engine never calls it; renderers and per-type editors do.
type CatalogService interface {
	Categories(ctx context.Context) ([]CatalogItem, error)
	Products(ctx context.Context, categoryID string, limit int) ([]CatalogItem, error)
}

// BannerDescriptor describes a slider or side-banner asset managed outside
// the layout engine.
type BannerDescriptor struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	Position int    `json:"position"`
}

// BannerService supplies homepage slider and side-banner descriptors.
type BannerService interface {
	Sliders(ctx context.Context) ([]BannerDescriptor, error)
	SideBanners(ctx context.Context) ([]BannerDescriptor, error)
}

// ImageStore uploads binary assets and returns the stored asset URL.
type ImageStore interface {
	Upload(ctx context.Context, name string, content io.Reader) (string, error)
}

// Clock abstracts time for services that stamp ids and audit entries.
type Clock func() time.Time
