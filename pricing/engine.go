// Package pricing derives order totals from cart contents and store
// configuration, and composes custom-formulation prices from ingredient
// modifiers.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/franzhentze92/botanic-care-backend/models"
)

// Config carries the store's pricing parameters. None of these are
// constants; they come from configuration.
type Config struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	VATRate               decimal.Decimal
}

// Quote is a full price breakdown for a cart. Total is always
// Subtotal + ShippingCost + Tax, each rounded to cents.
type Quote struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// Engine computes quotes against a fixed configuration.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Quote prices the given cart lines. Shipping is waived at or above the
// free-shipping threshold, otherwise the flat fee applies; tax is the VAT
// rate applied to the subtotal.
func (e *Engine) Quote(items []models.CartItem) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	shipping := e.cfg.FlatShippingFee
	if subtotal.GreaterThanOrEqual(e.cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(e.cfg.VATRate).Round(2)

	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal.Add(shipping).Add(tax).Round(2),
	}
}
