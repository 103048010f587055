package render

import (
	"context"

	"github.com/goliatone/go-storefront/internal/sections"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// WithCatalog wires the host catalog service used to hydrate product and
// category driven units.
func WithCatalog(catalog interfaces.CatalogService) DispatcherOption {
	return func(d *Dispatcher) {
		d.catalog = catalog
	}
}

// WithBanners wires the host banner service used to hydrate slider and
// side-banner units.
func WithBanners(banners interfaces.BannerService) DispatcherOption {
	return func(d *Dispatcher) {
		d.banners = banners
	}
}

// Hydrate fills each unit's Items from the host services where the section
// type is data-driven. Hydration is best-effort per unit: a failing lookup
// logs and leaves that unit's Items empty so the page still renders.
func (d *Dispatcher) Hydrate(ctx context.Context, units []Unit) []Unit {
	for i := range units {
		items, err := d.hydrateUnit(ctx, &units[i])
		if err != nil {
			d.logger.Warn("render.hydrate_failed", "section_id", units[i].SectionID, "type", units[i].Type, "error", err)
			continue
		}
		units[i].Items = items
	}
	return units
}

func (d *Dispatcher) hydrateUnit(ctx context.Context, unit *Unit) ([]any, error) {
	switch unit.Type {
	case sections.TypeCategories:
		if d.catalog == nil {
			return nil, nil
		}
		categories, err := d.catalog.Categories(ctx)
		if err != nil {
			return nil, err
		}
		return catalogItems(categories), nil
	case sections.TypeProducts, sections.TypeFeatured, sections.TypeNewArrivals:
		if d.catalog == nil {
			return nil, nil
		}
		categoryID, _ := unit.Settings["categoryId"].(string)
		limit := intSetting(unit.Settings, "limit", 12)
		products, err := d.catalog.Products(ctx, categoryID, limit)
		if err != nil {
			return nil, err
		}
		return catalogItems(products), nil
	case sections.TypeSliders, sections.TypeCarouselWithSideBanner:
		if d.banners == nil {
			return nil, nil
		}
		banners, err := d.banners.Sliders(ctx)
		if err != nil {
			return nil, err
		}
		return bannerItems(banners), nil
	case sections.TypeSideBanners:
		if d.banners == nil {
			return nil, nil
		}
		banners, err := d.banners.SideBanners(ctx)
		if err != nil {
			return nil, err
		}
		return bannerItems(banners), nil
	default:
		return nil, nil
	}
}

func catalogItems(items []interfaces.CatalogItem) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func bannerItems(items []interfaces.BannerDescriptor) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func intSetting(settings map[string]any, key string, fallback int) int {
	switch value := settings[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	default:
		return fallback
	}
}
