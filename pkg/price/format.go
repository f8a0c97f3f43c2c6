package price

import (
	"strings"
	"unicode"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-storefront/pkg/catalog"
)

// DefaultLocale is used when the caller passes an empty locale.
const DefaultLocale = "us-en"

// fallbackCurrency replaces an absent or sentinel "NONE" currency code.
const fallbackCurrency = "USD"

// Format renders the product's price for the given locale.
//
// A price range whose minimum and maximum final amounts agree collapses to
// a single value; a real range joins both sides with "-". On each side a
// regular amount higher than the final one renders struck through before
// the final amount. A product without price data renders as "".
func Format(p catalog.Product, locale string) string {
	switch {
	case p.PriceRange != nil:
		f := newFormatter(locale, resolveCurrency(p))
		minimum := p.PriceRange.Minimum
		maximum := p.PriceRange.Maximum
		if minimum.Final.Amount.Value == maximum.Final.Amount.Value {
			return f.side(minimum)
		}
		return f.side(minimum) + "-" + f.side(maximum)
	case p.Price != nil:
		return newFormatter(locale, resolveCurrency(p)).side(*p.Price)
	default:
		return ""
	}
}

func resolveCurrency(p catalog.Product) string {
	code := ""
	if p.PriceRange != nil {
		code = p.PriceRange.Minimum.Regular.Amount.Currency
	} else if p.Price != nil {
		code = p.Price.Regular.Amount.Currency
	}
	code = strings.TrimSpace(code)
	if code == "" || code == "NONE" {
		return fallbackCurrency
	}
	return code
}

type formatter struct {
	printer *message.Printer
	rules   currencyRules
	symbol  string
}

func newFormatter(locale, currency string) formatter {
	tag := parseLocale(locale)
	return formatter{
		printer: message.NewPrinter(tag),
		rules:   rulesFor(tag),
		symbol:  symbolFor(currency),
	}
}

// side renders one regular/final pair, struck through when discounted.
func (f formatter) side(p catalog.Price) string {
	regular := p.Regular.Amount.Value
	final := p.Final.Amount.Value
	if regular > final {
		return "<s>" + f.amount(regular) + "</s> " + f.amount(final)
	}
	return f.amount(final)
}

func (f formatter) amount(value float64) string {
	digits := f.printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	pattern := f.rules.Pattern
	// Alphabetic fallback symbols (bare ISO codes) need a separating space
	// that glyph symbols do not.
	if pattern == "{symbol}{amount}" && endsWithLetter(f.symbol) {
		pattern = "{symbol} {amount}"
	}
	return strings.NewReplacer("{symbol}", f.symbol, "{amount}", digits).Replace(pattern)
}

func endsWithLetter(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsLetter(runes[len(runes)-1])
}
