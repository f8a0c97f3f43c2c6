// Package storefront provides presentation helpers for rendering product
// pages in a headless storefront pipeline: route parameter extraction,
// description and image selection, locale-aware price formatting, template
// adaptation, and page assembly.
package storefront

import (
	"context"

	"github.com/goliatone/go-storefront/pkg/assemble"
	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/display"
	"github.com/goliatone/go-storefront/pkg/pagetemplate"
	"github.com/goliatone/go-storefront/pkg/price"
	"github.com/goliatone/go-storefront/pkg/routing"
)

// Product aliases the catalog record consumed by every helper.
type Product = catalog.Product

// Image aliases a catalog image record.
type Image = catalog.Image

// Params aliases the route parameter mapping returned by MatchRoute.
type Params = routing.Params

// MatchRoute extracts route parameters from path using a format string
// with {name} placeholder segments.
func MatchRoute(path, format string) (Params, error) {
	return routing.Match(path, format)
}

// SelectDescription returns the first non-empty, markup-stripped
// description candidate in priority order.
func SelectDescription(p Product, sources ...display.Source) string {
	return display.SelectDescription(p, sources...)
}

// SelectImage returns the first product image carrying the given role; an
// empty role selects the first image outright.
func SelectImage(p Product, role string) (Image, bool) {
	return display.SelectImage(p, role)
}

// BuildImageList projects the product images to URLs with primaryURL moved
// to the front.
func BuildImageList(primaryURL string, images []Image) []string {
	return display.BuildImageList(primaryURL, images)
}

// FormatPrice renders the product's price for the given locale, including
// discount strike-through and range markup.
func FormatPrice(p Product, locale string) string {
	return price.Format(p, locale)
}

// Fields carries the computed display values merged into a product page.
type Fields struct {
	Title       string
	Description string
	Price       string
	Image       string
	Gallery     []string
}

// ComputeFields derives the standard display fields from a product record.
// Missing product data yields empty fields, never an error.
func ComputeFields(p Product, locale string) Fields {
	primary, _ := display.SelectImage(p, display.DefaultImageRole)
	return Fields{
		Title:       p.Name,
		Description: display.SelectDescription(p),
		Price:       price.Format(p, locale),
		Image:       primary.URL,
		Gallery:     display.BuildImageList(primary.URL, p.Images),
	}
}

// Map converts the fields to the map shape the assembler's engine pass
// consumes.
func (f Fields) Map() map[string]any {
	return map[string]any{
		"title":       f.Title,
		"description": f.Description,
		"price":       f.Price,
		"image":       f.Image,
		"gallery":     f.Gallery,
	}
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithAdapter replaces the default template adapter.
func WithAdapter(adapter *pagetemplate.Adapter) BuilderOption {
	return func(b *Builder) {
		if adapter != nil {
			b.adapter = adapter
		}
	}
}

// WithAssembler replaces the default assembler.
func WithAssembler(assembler *assemble.Assembler) BuilderOption {
	return func(b *Builder) {
		if assembler != nil {
			b.assembler = assembler
		}
	}
}

// Builder runs the full page pipeline: adapt the base template, compute
// display fields, and assemble the final HTML.
type Builder struct {
	adapter   *pagetemplate.Adapter
	assembler *assemble.Assembler
}

// NewBuilder constructs a Builder with default adapter and assembler.
func NewBuilder(options ...BuilderOption) *Builder {
	builder := &Builder{
		adapter:   pagetemplate.New(),
		assembler: assemble.New(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(builder)
		}
	}
	return builder
}

// PageRequest describes one product page build.
type PageRequest struct {
	Product      Product
	Locale       string
	TemplateURL  string
	BlockClasses []string

	// Blocks supplies pre-rendered HTML for block markers the computed
	// fields do not cover.
	Blocks map[string]string

	Theme   string
	Variant string
}

// BuildPage fetches and adapts the base template, computes the product's
// display fields, and assembles the final page.
func (b *Builder) BuildPage(ctx context.Context, req PageRequest) (string, error) {
	template, err := b.adapter.Adapt(ctx, req.TemplateURL, req.BlockClasses, pagetemplate.Context{
		Locale: req.Locale,
	})
	if err != nil {
		return "", err
	}

	return b.assembler.Assemble(ctx, assemble.Page{
		Template: template,
		Blocks:   req.Blocks,
		Fields:   ComputeFields(req.Product, req.Locale).Map(),
		Theme:    req.Theme,
		Variant:  req.Variant,
	})
}
