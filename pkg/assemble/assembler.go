package assemble

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-storefront/pkg/pagetemplate"
)

// Page is one assembly request: the adapted template, the HTML for each
// block marker, and the field values interpolated by the engine pass.
type Page struct {
	Template string
	Blocks   map[string]string
	Fields   map[string]any

	// Theme and Variant select per-block template overrides when the
	// assembler carries a theme selector.
	Theme   string
	Variant string
}

// SelectorFunc adapts a function to the go-theme selector contract.
type SelectorFunc func(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)

// Select implements theme.ThemeSelector.
func (f SelectorFunc) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	return f(name, variant, opts...)
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithEngine sets the template engine used for theme partials and the
// field interpolation pass. Without an engine the assembler only
// substitutes block markers.
func WithEngine(engine Renderer) Option {
	return func(a *Assembler) {
		a.engine = engine
	}
}

// WithThemeSelector resolves per-block template overrides from go-theme
// manifests. Manifest templates are keyed "blocks.<class>".
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(a *Assembler) {
		a.themes = selector
	}
}

// WithMarker overrides the block placeholder marker; it must mirror the
// placeholder the template was adapted with.
func WithMarker(fn func(class string) string) Option {
	return func(a *Assembler) {
		if fn != nil {
			a.marker = fn
		}
	}
}

// Assembler merges blocks and fields into adapted templates. It holds no
// per-request state; a single assembler serves concurrent calls as long as
// its engine does.
type Assembler struct {
	engine Renderer
	themes theme.ThemeSelector
	marker func(string) string
}

// New constructs an Assembler from the provided options.
func New(options ...Option) *Assembler {
	assembler := &Assembler{
		marker: pagetemplate.Marker,
	}
	for _, opt := range options {
		if opt != nil {
			opt(assembler)
		}
	}
	return assembler
}

// markerPattern recognises the default block placeholder syntax so
// unfilled markers can be blanked ahead of the engine pass.
var markerPattern = regexp.MustCompile(`\{\{>\s*[^}\s]+\s*\}\}`)

// Assemble produces the final page HTML: theme overrides are resolved,
// block markers substituted, and field expressions rendered through the
// engine. Field expressions carrying pre-rendered HTML must use the safe
// filter ({{ price|safe }}) so the engine does not escape them; block
// substitution itself never escapes.
//
// Markers without a matching block stay in place when no engine pass runs,
// preserving them for a downstream engine; with an engine configured they
// are blanked so the block renders empty instead of breaking the field
// pass.
func (a *Assembler) Assemble(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	blocks, err := a.resolveBlocks(page)
	if err != nil {
		return "", err
	}

	out := page.Template
	for class, html := range blocks {
		out = strings.ReplaceAll(out, a.marker(class), html)
	}

	if a.engine == nil {
		return out, nil
	}
	out = markerPattern.ReplaceAllString(out, "")
	rendered, err := a.engine.RenderString(out, page.Fields)
	if err != nil {
		return "", fmt.Errorf("assemble: render fields: %w", err)
	}
	return rendered, nil
}

// resolveBlocks starts from the caller's blocks and lets theme manifest
// templates override individual entries. Variant templates win over the
// base manifest.
func (a *Assembler) resolveBlocks(page Page) (map[string]string, error) {
	blocks := make(map[string]string, len(page.Blocks))
	for class, html := range page.Blocks {
		blocks[class] = html
	}

	if a.themes == nil || page.Theme == "" {
		return blocks, nil
	}

	selection, err := a.themes.Select(page.Theme, page.Variant)
	if err != nil {
		return nil, fmt.Errorf("assemble: select theme %q: %w", page.Theme, err)
	}
	if selection == nil || selection.Manifest == nil {
		return blocks, nil
	}

	overrides := blockTemplates(selection.Manifest, page.Variant)
	if len(overrides) == 0 {
		return blocks, nil
	}
	if a.engine == nil {
		return nil, fmt.Errorf("assemble: theme %q declares block templates but no engine is configured", page.Theme)
	}

	for class, templateName := range overrides {
		html, err := a.engine.RenderTemplate(templateName, page.Fields)
		if err != nil {
			return nil, fmt.Errorf("assemble: render block %q: %w", class, err)
		}
		blocks[class] = html
	}
	return blocks, nil
}

const blockTemplateKeyPrefix = "blocks."

func blockTemplates(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string)
	collect := func(templates map[string]string) {
		for key, name := range templates {
			if !strings.HasPrefix(key, blockTemplateKeyPrefix) {
				continue
			}
			class := strings.TrimPrefix(key, blockTemplateKeyPrefix)
			if class == "" || name == "" {
				continue
			}
			out[class] = name
		}
	}

	collect(manifest.Templates)
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			collect(v.Templates)
		}
	}
	return out
}
