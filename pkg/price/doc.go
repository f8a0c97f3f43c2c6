// Package price renders product prices for display: locale-aware currency
// formatting with exactly two fraction digits, strike-through markup when a
// product is discounted, and dash-joined ranges for configurable products.
//
// Formatting is total: a product without price data renders as the empty
// string rather than an error.
package price
