package pagetemplate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-storefront/pkg/pagetemplate"
	"github.com/goliatone/go-storefront/pkg/testsupport"
)

const samplePage = `<main class="page">
<div class="commerce-breadcrumbs">home / shoes</div>
<h1 class="title">Runner</h1>
<div class="commerce-product-description"><p>old copy</p></div>
<footer class="page-footer">fine print</footer>
</main>`

func pageServer(t *testing.T, body string) (*httptest.Server, *http.Request) {
	t.Helper()

	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestAdapt_ReplacesBlocksWithMarkers(t *testing.T) {
	srv, captured := pageServer(t, samplePage)

	adapter := pagetemplate.New()
	out, err := adapter.Adapt(context.Background(), srv.URL+"/page", []string{
		"commerce-breadcrumbs",
		"commerce-product-description",
	}, pagetemplate.Context{})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}

	if captured.URL.Path != "/page.plain.html" {
		t.Fatalf("expected plain rendition fetch, got %q", captured.URL.Path)
	}
	if !strings.Contains(out, pagetemplate.Marker("commerce-breadcrumbs")) {
		t.Fatalf("missing breadcrumbs marker in:\n%s", out)
	}
	if !strings.Contains(out, pagetemplate.Marker("commerce-product-description")) {
		t.Fatalf("missing description marker in:\n%s", out)
	}
	if strings.Contains(out, "old copy") {
		t.Fatalf("replaced block content leaked through:\n%s", out)
	}
	if !strings.Contains(out, `<h1 class="title">Runner</h1>`) {
		t.Fatalf("non-matching siblings must survive:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("expected trailing newline")
	}

	breadcrumbs := strings.Index(out, pagetemplate.Marker("commerce-breadcrumbs"))
	title := strings.Index(out, "Runner")
	description := strings.Index(out, pagetemplate.Marker("commerce-product-description"))
	if !(breadcrumbs < title && title < description) {
		t.Fatalf("document order not preserved:\n%s", out)
	}
}

func TestAdapt_GoldenPage(t *testing.T) {
	srv, _ := pageServer(t, samplePage)

	adapter := pagetemplate.New()
	out, err := adapter.Adapt(context.Background(), srv.URL+"/page", []string{
		"commerce-breadcrumbs",
		"commerce-product-description",
	}, pagetemplate.Context{})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}

	golden := filepath.Join("testdata", "adapted_page.golden.html")
	if testsupport.WriteMaybeGolden(t, golden, []byte(out)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, out); diff != "" {
		t.Fatalf("adapted page mismatch (-want +got):\n%s", diff)
	}
}

func TestAdapt_ReplacesEveryMatchingElement(t *testing.T) {
	srv, _ := pageServer(t, `<div class="widget">one</div><p>keep</p><div class="widget">two</div>`)

	adapter := pagetemplate.New()
	out, err := adapter.Adapt(context.Background(), srv.URL+"/p", []string{"widget"}, pagetemplate.Context{})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}

	if got := strings.Count(out, pagetemplate.Marker("widget")); got != 2 {
		t.Fatalf("expected 2 markers, got %d in:\n%s", got, out)
	}
	if !strings.Contains(out, "<p>keep</p>") {
		t.Fatalf("sibling content lost:\n%s", out)
	}
}

func TestAdapt_SubstitutesLocaleIntoURL(t *testing.T) {
	srv, captured := pageServer(t, samplePage)

	adapter := pagetemplate.New()
	url := srv.URL + " /content/{locale}/product /"
	_, err := adapter.Adapt(context.Background(), url, nil, pagetemplate.Context{Locale: "fr"})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}

	if captured.URL.Path != "/content/fr/product.plain.html" {
		t.Fatalf("expected locale substitution, got %q", captured.URL.Path)
	}
}

func TestAdapt_DefaultLocaleLeavesURLUntouched(t *testing.T) {
	srv, captured := pageServer(t, samplePage)

	adapter := pagetemplate.New()
	_, err := adapter.Adapt(context.Background(), srv.URL+"/content/{locale}/product", nil, pagetemplate.Context{Locale: "default"})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}

	if captured.URL.Path != "/content/%7Blocale%7D/product.plain.html" && captured.URL.Path != "/content/{locale}/product.plain.html" {
		t.Fatalf("expected untouched URL, got %q", captured.URL.Path)
	}
}

func TestAdapt_SendsConfiguredUserAgent(t *testing.T) {
	srv, captured := pageServer(t, samplePage)

	adapter := pagetemplate.New(pagetemplate.WithUserAgent("storefront/1.0"))
	if _, err := adapter.Adapt(context.Background(), srv.URL+"/p", nil, pagetemplate.Context{}); err != nil {
		t.Fatalf("adapt: %v", err)
	}

	if got := captured.Header.Get("User-Agent"); got != "storefront/1.0" {
		t.Fatalf("unexpected user agent %q", got)
	}
}

func TestAdapt_CustomPlaceholder(t *testing.T) {
	srv, _ := pageServer(t, `<div class="widget">x</div>`)

	adapter := pagetemplate.New(pagetemplate.WithPlaceholder(func(class string) string {
		return "[[" + class + "]]"
	}))
	out, err := adapter.Adapt(context.Background(), srv.URL+"/p", []string{"widget"}, pagetemplate.Context{})
	if err != nil {
		t.Fatalf("adapt: %v", err)
	}
	if !strings.Contains(out, "[[widget]]") {
		t.Fatalf("custom placeholder not applied:\n%s", out)
	}
}

func TestAdapt_NonSuccessStatusIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	adapter := pagetemplate.New()
	_, err := adapter.Adapt(context.Background(), srv.URL+"/missing", nil, pagetemplate.Context{})

	var fetchErr *pagetemplate.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if !strings.Contains(fetchErr.URL, ".plain.html") {
		t.Fatalf("expected failing URL in error, got %q", fetchErr.URL)
	}
}

func TestAdapt_UnreachableHostIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	adapter := pagetemplate.New()
	_, err := adapter.Adapt(context.Background(), srv.URL+"/p", nil, pagetemplate.Context{})

	var fetchErr *pagetemplate.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
}
