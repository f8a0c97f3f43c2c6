package catalog

import (
	"encoding/json"
	"fmt"
)

// Product is a read-only view of an upstream catalog record. The JSON tags
// follow the commerce API field names.
type Product struct {
	Name             string      `json:"name,omitempty"`
	SKU              string      `json:"sku,omitempty"`
	URLKey           string      `json:"urlKey,omitempty"`
	MetaDescription  string      `json:"metaDescription,omitempty"`
	ShortDescription string      `json:"shortDescription,omitempty"`
	Description      string      `json:"description,omitempty"`
	Images           []Image     `json:"images,omitempty"`
	Price            *Price      `json:"price,omitempty"`
	PriceRange       *PriceRange `json:"priceRange,omitempty"`
}

// Image is a product asset with the roles the upstream catalog assigned to
// it (for example "image", "thumbnail", "swatch").
type Image struct {
	URL   string   `json:"url,omitempty"`
	Label string   `json:"label,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the image carries the given role.
func (i Image) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Money is an amount in a named currency.
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency,omitempty"`
}

// Amount wraps Money to mirror the upstream `regular.amount.value` nesting.
type Amount struct {
	Amount Money `json:"amount"`
}

// Price carries the regular and final amounts for a simple product. When
// the product is discounted the final amount is lower than the regular one.
type Price struct {
	Regular Amount `json:"regular"`
	Final   Amount `json:"final"`
}

// PriceRange carries the price bounds of a configurable product.
type PriceRange struct {
	Minimum Price `json:"minimum"`
	Maximum Price `json:"maximum"`
}

// Decode parses an upstream product payload.
func Decode(data []byte) (Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return Product{}, fmt.Errorf("catalog: decode product: %w", err)
	}
	return p, nil
}
