package pagetemplate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// defaultStoreView is the locale value that leaves the template URL
// untouched.
const defaultStoreView = "default"

// pageSuffix selects the markup-only rendition of a storefront page.
const pageSuffix = ".plain.html"

// Context carries per-request adaptation settings.
type Context struct {
	Locale string
}

// FetchError reports a failed template page read. It wraps the underlying
// transport error and is never retried.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("pagetemplate: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Marker returns the placeholder emitted for a block class. The assembler
// substitutes these markers with rendered block content.
func Marker(class string) string {
	return "{{> " + class + " }}"
}

// Option configures an Adapter before construction.
type Option func(*Adapter)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithTimeout bounds each template fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Adapter) {
		a.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with template fetches.
func WithUserAgent(agent string) Option {
	return func(a *Adapter) {
		a.userAgent = strings.TrimSpace(agent)
	}
}

// WithPlaceholder overrides the marker emitted for each block class, for
// callers targeting a template engine with a different partial syntax.
func WithPlaceholder(fn func(class string) string) Option {
	return func(a *Adapter) {
		if fn != nil {
			a.placeholder = fn
		}
	}
}

// Adapter fetches storefront pages and rewrites their block elements into
// placeholders. Each Adapt call is independent; the adapter holds no
// per-request state.
type Adapter struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	placeholder func(string) string
}

// New constructs an Adapter from the provided options.
func New(options ...Option) *Adapter {
	adapter := &Adapter{
		client:      &http.Client{},
		placeholder: Marker,
	}
	for _, opt := range options {
		if opt != nil {
			opt(adapter)
		}
	}
	return adapter
}

// Adapt fetches the markup-only rendition of url and replaces every
// element carrying one of the block classes with a placeholder marker,
// preserving document order and all non-matching content.
//
// When ctx carries a locale other than "default", the URL is stripped of
// whitespace, trimmed of one trailing slash, and its {locale} token is
// substituted before fetching.
func (a *Adapter) Adapt(ctx context.Context, url string, blockClasses []string, tctx Context) (string, error) {
	target := resolveURL(url, tctx.Locale)

	body, err := a.fetch(ctx, target+pageSuffix)
	if err != nil {
		return "", err
	}
	return replaceBlocks(body, blockClasses, a.placeholder)
}

func resolveURL(url, locale string) string {
	if locale == "" || locale == defaultStoreView {
		return url
	}
	cleaned := strings.Join(strings.Fields(url), "")
	cleaned = strings.TrimSuffix(cleaned, "/")
	return strings.ReplaceAll(cleaned, "{locale}", locale)
}

func (a *Adapter) fetch(ctx context.Context, url string) (string, error) {
	reqCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return string(data), nil
}

func replaceBlocks(body string, blockClasses []string, placeholder func(string) string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("pagetemplate: parse page: %w", err)
	}

	for _, class := range blockClasses {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		doc.Find("." + class).ReplaceWithHtml(placeholder(class))
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("pagetemplate: serialize page: %w", err)
	}
	// Rendering entity-encodes the ">" inside placeholder markers.
	out = strings.ReplaceAll(out, "&gt;", ">")
	return out + "\n", nil
}
