package price_test

import (
	"testing"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/price"
)

func money(value float64, currency string) catalog.Amount {
	return catalog.Amount{Amount: catalog.Money{Value: value, Currency: currency}}
}

func simpleProduct(regular, final float64, currency string) catalog.Product {
	return catalog.Product{
		Price: &catalog.Price{
			Regular: money(regular, currency),
			Final:   money(final, currency),
		},
	}
}

func rangeProduct(minRegular, minFinal, maxRegular, maxFinal float64, currency string) catalog.Product {
	return catalog.Product{
		PriceRange: &catalog.PriceRange{
			Minimum: catalog.Price{Regular: money(minRegular, currency), Final: money(minFinal, currency)},
			Maximum: catalog.Price{Regular: money(maxRegular, currency), Final: money(maxFinal, currency)},
		},
	}
}

func TestFormat_DiscountedPriceStrikesRegular(t *testing.T) {
	got := price.Format(simpleProduct(100, 80, "USD"), "us-en")
	want := "<s>$100.00</s> $80.00"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormat_EqualAmountsOmitStrikeThrough(t *testing.T) {
	got := price.Format(simpleProduct(80, 80, "USD"), "us-en")
	if got != "$80.00" {
		t.Fatalf("expected %q, got %q", "$80.00", got)
	}
}

func TestFormat_CollapsedRangeRendersSingleValue(t *testing.T) {
	got := price.Format(rangeProduct(50, 40, 50, 40, "USD"), "us-en")
	want := "<s>$50.00</s> $40.00"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormat_TrueRangeJoinsSidesWithDash(t *testing.T) {
	got := price.Format(rangeProduct(10, 10, 20, 20, "USD"), "us-en")
	if got != "$10.00-$20.00" {
		t.Fatalf("expected %q, got %q", "$10.00-$20.00", got)
	}
}

func TestFormat_RangeSidesDiscountIndependently(t *testing.T) {
	got := price.Format(rangeProduct(12, 10, 25, 20, "USD"), "us-en")
	want := "<s>$12.00</s> $10.00-<s>$25.00</s> $20.00"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormat_GroupsThousandsPerLocale(t *testing.T) {
	got := price.Format(simpleProduct(1234.5, 1234.5, "USD"), "us-en")
	if got != "$1,234.50" {
		t.Fatalf("expected %q, got %q", "$1,234.50", got)
	}
}

func TestFormat_GermanLocalePlacesSymbolAfterAmount(t *testing.T) {
	got := price.Format(simpleProduct(1234.5, 1234.5, "EUR"), "de-DE")
	if got != "1.234,50 €" {
		t.Fatalf("expected %q, got %q", "1.234,50 €", got)
	}
}

func TestFormat_RegionFirstStoreCode(t *testing.T) {
	// Storefront URLs use region-first store codes; "us-en" must resolve
	// like "en-US".
	direct := price.Format(simpleProduct(99, 99, "USD"), "en-US")
	storeCode := price.Format(simpleProduct(99, 99, "USD"), "us-en")
	if direct != storeCode {
		t.Fatalf("store code mismatch: %q vs %q", storeCode, direct)
	}
}

func TestFormat_NoneCurrencyFallsBackToUSD(t *testing.T) {
	got := price.Format(simpleProduct(5, 5, "NONE"), "us-en")
	if got != "$5.00" {
		t.Fatalf("expected USD fallback, got %q", got)
	}
}

func TestFormat_MissingCurrencyFallsBackToUSD(t *testing.T) {
	got := price.Format(simpleProduct(5, 5, ""), "us-en")
	if got != "$5.00" {
		t.Fatalf("expected USD fallback, got %q", got)
	}
}

func TestFormat_UnknownCurrencyRendersCode(t *testing.T) {
	got := price.Format(simpleProduct(5, 5, "SEK"), "us-en")
	if got != "SEK 5.00" {
		t.Fatalf("expected code fallback, got %q", got)
	}
}

func TestFormat_NoPriceDataRendersEmpty(t *testing.T) {
	if got := price.Format(catalog.Product{}, "us-en"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormat_RangeCurrencyComesFromMinimumRegular(t *testing.T) {
	p := rangeProduct(10, 10, 20, 20, "EUR")
	got := price.Format(p, "us-en")
	if got != "€10.00-€20.00" {
		t.Fatalf("expected euro symbols, got %q", got)
	}
}

func TestFormat_NegativeAmountPassesThrough(t *testing.T) {
	got := price.Format(simpleProduct(-5, -5, "USD"), "us-en")
	if got != "$-5.00" {
		t.Fatalf("expected pass-through negative, got %q", got)
	}
}
