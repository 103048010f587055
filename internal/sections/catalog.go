package sections

// builtinCatalog returns the registrations installed by NewBuiltinRegistry.
// Defaults mirror what the management UI seeds when an operator adds a
// section of each type; renderers are resolved by name by the host theme.
func builtinCatalog() []Registration {
	return []Registration{
		entry(TypeHero, "Hero Banner", "Welcome to our store", map[string]any{
			"heading":    "Discover our new collection",
			"subheading": "Hand-picked products, updated weekly",
			"ctaText":    "Shop now",
			"ctaLink":    "/catalog",
			"image":      "",
			"overlay":    true,
		}, &Animations{Entrance: "fade-in", Duration: 600}),
		entry(TypeFeatured, "Featured Products", "Featured", map[string]any{
			"itemsPerRow": 4,
			"limit":       8,
			"source":      "featured",
		}, nil),
		entry(TypeCategories, "Category Grid", "Shop by category", map[string]any{
			"itemsPerRow":   3,
			"showNames":     true,
			"activeOnly":    true,
			"categoryIds":   []any{},
			"imageAspect":   "square",
			"showItemCount": false,
		}, nil),
		entryWithSchema(TypeProducts, "Product Grid", "Our products", map[string]any{
			"itemsPerRow": 4,
			"limit":       12,
			"categoryId":  "",
			"sortBy":      "newest",
		}, nil, productsSettingsSchema),
		entry(TypeText, "Text Block", "About us", map[string]any{
			"content":   "",
			"format":    "markdown",
			"alignment": "left",
		}, nil),
		entry(TypeImage, "Image", "Image", map[string]any{
			"src":     "",
			"alt":     "",
			"link":    "",
			"rounded": false,
		}, nil),
		entry(TypeBanner, "Promo Banner", "Promotion", map[string]any{
			"image":   "",
			"link":    "",
			"heading": "",
		}, nil),
		entryWithSchema(TypeVideo, "Video", "Watch", map[string]any{
			"videoUrl": "",
			"autoplay": false,
			"muted":    true,
			"loop":     false,
		}, nil, videoSettingsSchema),
		entry(TypeNewsletter, "Newsletter Signup", "Stay in touch", map[string]any{
			"heading":     "Subscribe to our newsletter",
			"buttonText":  "Subscribe",
			"placeholder": "Your email address",
		}, nil),
		entry(TypeTestimonials, "Testimonials", "What customers say", map[string]any{
			"items":    []any{},
			"autoplay": true,
			"interval": 5000,
		}, nil),
		entry(TypeGallery, "Gallery", "Gallery", map[string]any{
			"images":      []any{},
			"itemsPerRow": 3,
			"lightbox":    true,
		}, nil),
		entry(TypeBlog, "Blog Posts", "From the blog", map[string]any{
			"limit":       3,
			"showExcerpt": true,
		}, nil),
		entry(TypeTeam, "Team", "Meet the team", map[string]any{
			"members":     []any{},
			"itemsPerRow": 4,
		}, nil),
		entry(TypeStats, "Stats", "In numbers", map[string]any{
			"items": []any{},
		}, nil),
		entry(TypePricing, "Pricing", "Plans", map[string]any{
			"plans":           []any{},
			"highlightedPlan": "",
		}, nil),
		entry(TypeFeatures, "Feature List", "Why shop with us", map[string]any{
			"items":       []any{},
			"itemsPerRow": 3,
			"showIcons":   true,
		}, nil),
		entry(TypeTimeline, "Timeline", "Our story", map[string]any{
			"items": []any{},
		}, nil),
		entry(TypeAccordion, "Accordion", "FAQ", map[string]any{
			"items":         []any{},
			"allowMultiple": false,
		}, nil),
		entry(TypeSearch, "Search", "Search", map[string]any{
			"placeholder": "Search products",
			"showButton":  true,
		}, nil),
		entry(TypeMap, "Map", "Find us", map[string]any{
			"latitude":  0.0,
			"longitude": 0.0,
			"zoom":      14,
			"marker":    "",
		}, nil),
		entry(TypeCTA, "Call to Action", "Ready to start?", map[string]any{
			"heading":    "",
			"buttonText": "Get started",
			"buttonLink": "",
			"background": "",
		}, nil),
		entry(TypeDivider, "Divider", "Divider", map[string]any{
			"style": "solid",
			"width": "full",
		}, nil),
		entry(TypeSpacer, "Spacer", "Spacer", map[string]any{
			"height": 48,
		}, nil),
		entry(TypeAlert, "Alert", "Notice", map[string]any{
			"message":     "",
			"variant":     "info",
			"dismissible": true,
		}, nil),
		entry(TypeSliders, "Slider", "Slider", map[string]any{
			"autoplay": true,
			"interval": 6000,
			"arrows":   true,
			"dots":     true,
		}, nil),
		entry(TypeSideBanners, "Side Banners", "Side banners", map[string]any{
			"columns": 2,
		}, nil),
		entry(TypeCarouselWithSideBanner, "Carousel with Side Banners", "Highlights", map[string]any{
			"autoplay":    true,
			"interval":    6000,
			"sideColumns": 1,
		}, nil),
		entry(TypeNewArrivals, "New Arrivals", "New arrivals", map[string]any{
			"itemsPerRow": 4,
			"limit":       8,
			"days":        30,
		}, nil),
	}
}

func entry(sectionType, label, title string, settings map[string]any, animations *Animations) Registration {
	return entryWithSchema(sectionType, label, title, settings, animations, "")
}

func entryWithSchema(sectionType, label, title string, settings map[string]any, animations *Animations, schema string) Registration {
	return Registration{
		Descriptor: Descriptor{
			Type:              sectionType,
			Label:             label,
			DefaultTitle:      title,
			DefaultSettings:   settings,
			DefaultAnimations: animations,
		},
		Renderer:       RendererHandle{Name: "sections/" + sectionType},
		SettingsSchema: schema,
	}
}

const productsSettingsSchema = `{
	"type": "object",
	"properties": {
		"itemsPerRow": {"type": "integer", "minimum": 1, "maximum": 6},
		"limit": {"type": "integer", "minimum": 1, "maximum": 48},
		"categoryId": {"type": "string"},
		"sortBy": {"enum": ["newest", "price-asc", "price-desc", "popular"]}
	}
}`

const videoSettingsSchema = `{
	"type": "object",
	"properties": {
		"videoUrl": {"type": "string"},
		"autoplay": {"type": "boolean"},
		"muted": {"type": "boolean"},
		"loop": {"type": "boolean"}
	}
}`
