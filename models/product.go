package models

import "strings"

// CustomSKUPrefix marks products assembled by the customer rather than
// stocked from the catalog.
const CustomSKUPrefix = "CUSTOM-"

// Product is a catalog snapshot. Carts and orders copy it at action time,
// so later catalog price changes never alter existing totals.
type Product struct {
	ID            int64    `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Price         float64  `bson:"price" json:"price"`
	OriginalPrice *float64 `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Image         string   `bson:"image" json:"image"`
	RealImage     string   `bson:"real_image" json:"real_image"`
	Size          string   `bson:"size" json:"size"`
	SKU           string   `bson:"sku" json:"sku"`
}

// IsCustomFormulation reports whether the product is a customer-assembled
// formulation rather than a catalog item.
func (p Product) IsCustomFormulation() bool {
	return strings.HasPrefix(p.SKU, CustomSKUPrefix)
}

// FormulationID returns the formulation id embedded in a custom SKU, or ""
// for catalog products.
func (p Product) FormulationID() string {
	if !p.IsCustomFormulation() {
		return ""
	}
	return strings.TrimPrefix(p.SKU, CustomSKUPrefix)
}
