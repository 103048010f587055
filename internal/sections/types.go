package sections

// Section type identifiers. The set is closed for built-in behaviour, but
// persisted layouts may reference types the current build does not know;
// lookups for those resolve to the generic fallback instead of failing.
const (
	TypeHero                   = "hero"
	TypeFeatured               = "featured"
	TypeCategories             = "categories"
	TypeProducts               = "products"
	TypeText                   = "text"
	TypeImage                  = "image"
	TypeBanner                 = "banner"
	TypeVideo                  = "video"
	TypeNewsletter             = "newsletter"
	TypeTestimonials           = "testimonials"
	TypeGallery                = "gallery"
	TypeBlog                   = "blog"
	TypeTeam                   = "team"
	TypeStats                  = "stats"
	TypePricing                = "pricing"
	TypeFeatures               = "features"
	TypeTimeline               = "timeline"
	TypeAccordion              = "accordion"
	TypeSearch                 = "search"
	TypeMap                    = "map"
	TypeCTA                    = "cta"
	TypeDivider                = "divider"
	TypeSpacer                 = "spacer"
	TypeAlert                  = "alert"
	TypeSliders                = "sliders"
	TypeSideBanners            = "side-banners"
	TypeCarouselWithSideBanner = "carousel-with-side-banners"
	TypeNewArrivals            = "new-arrivals"
)

// Animations carries the entrance hint forwarded verbatim to renderers.
type Animations struct {
	Entrance string `json:"entrance"`
	Duration int    `json:"duration"`
	Delay    int    `json:"delay"`
}

// Descriptor captures the defaults a section of a given type starts with.
type Descriptor struct {
	Type              string
	Label             string
	DefaultTitle      string
	DefaultSettings   map[string]any
	DefaultAnimations *Animations
}

// RendererHandle identifies the presentation unit a section resolves to.
// Fallback is set when the handle is the generic placeholder returned for
// unrecognised types.
type RendererHandle struct {
	Name     string
	Fallback bool
}
