// Package catalog defines the product record consumed by the display,
// price, and template helpers. The types mirror the upstream commerce API
// payload: every field is optional and readers degrade to empty values
// rather than failing on partial data.
package catalog
