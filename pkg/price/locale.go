package price

import (
	"strings"

	"golang.org/x/text/language"
)

// currencyRules captures how a locale lays out a currency amount. Pattern
// uses the {symbol} and {amount} placeholders.
type currencyRules struct {
	Pattern string
}

var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
		language.Dutch,
		language.BrazilianPortuguese,
		language.Japanese,
	}

	localeRules = []currencyRules{
		{Pattern: "{symbol}{amount}"},  // en-US
		{Pattern: "{symbol}{amount}"},  // en-GB
		{Pattern: "{amount} {symbol}"}, // de
		{Pattern: "{amount} {symbol}"}, // fr
		{Pattern: "{amount} {symbol}"}, // es
		{Pattern: "{amount} {symbol}"}, // it
		{Pattern: "{symbol} {amount}"}, // nl
		{Pattern: "{symbol} {amount}"}, // pt-BR
		{Pattern: "{symbol}{amount}"},  // ja
	}

	localeMatcher = language.NewMatcher(supportedLocales)
)

// narrowSymbols maps common ISO 4217 codes to their narrow display symbol.
// Codes outside the table fall back to the code itself with a separating
// space.
var narrowSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"KRW": "₩",
	"INR": "₹",
	"CAD": "CA$",
	"AUD": "A$",
	"BRL": "R$",
}

// parseLocale resolves a caller-supplied locale string to a language tag.
// It accepts BCP 47 identifiers and the region-first store codes used by
// headless storefront URLs (for example "us-en"), falling back to en-US.
func parseLocale(locale string) language.Tag {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return language.AmericanEnglish
	}
	if tag, err := language.Parse(trimmed); err == nil {
		return tag
	}
	if parts := strings.SplitN(trimmed, "-", 2); len(parts) == 2 {
		if tag, err := language.Parse(parts[1] + "-" + parts[0]); err == nil {
			return tag
		}
		if tag, err := language.Parse(parts[1]); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}

func rulesFor(tag language.Tag) currencyRules {
	_, idx, _ := localeMatcher.Match(tag)
	return localeRules[idx]
}

func symbolFor(code string) string {
	if symbol, ok := narrowSymbols[code]; ok {
		return symbol
	}
	return code
}
