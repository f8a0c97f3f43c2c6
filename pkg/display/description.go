package display

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-storefront/pkg/catalog"
)

// Source reads one description candidate from a product record.
type Source func(catalog.Product) string

// Named sources for the standard description fields.
var (
	MetaDescription  Source = func(p catalog.Product) string { return p.MetaDescription }
	ShortDescription Source = func(p catalog.Product) string { return p.ShortDescription }
	Description      Source = func(p catalog.Product) string { return p.Description }
)

// DefaultSources is the priority order used when the caller does not supply
// its own: the SEO meta description wins over the short description, which
// wins over the full description.
var DefaultSources = []Source{MetaDescription, ShortDescription, Description}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

// SelectDescription evaluates the sources in order and returns the first
// candidate that is non-empty after trimming, tag stripping, and newline
// removal. It returns "" when every candidate comes up empty.
func SelectDescription(p catalog.Product, sources ...Source) string {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	for _, source := range sources {
		if source == nil {
			continue
		}
		if candidate := cleanText(source(p)); candidate != "" {
			return candidate
		}
	}
	return ""
}

// cleanText trims the raw field, strips markup while keeping its text
// content, and flattens line breaks into single spaces.
func cleanText(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = html.UnescapeString(textStripper().Sanitize(text))
	text = strings.NewReplacer("\r", " ", "\n", " ").Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

func textStripper() *bluemonday.Policy {
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
