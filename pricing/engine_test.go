package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/franzhentze92/botanic-care-backend/models"
)

func testConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.RequireFromString("50"),
		FlatShippingFee:       decimal.RequireFromString("25.00"),
		VATRate:               decimal.RequireFromString("0.16"),
	}
}

func line(price float64, qty int) models.CartItem {
	return models.CartItem{Product: models.Product{Price: price}, Quantity: qty}
}

func TestQuoteOrderTotalIdentity(t *testing.T) {
	engine := NewEngine(testConfig())

	quote := engine.Quote([]models.CartItem{
		line(100.00, 2),
		line(50.00, 1),
	})

	assert.True(t, quote.Subtotal.Equal(decimal.RequireFromString("250")), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.ShippingCost.IsZero(), "shipping %s", quote.ShippingCost)
	assert.True(t, quote.Tax.Equal(decimal.RequireFromString("40")), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("290")), "total %s", quote.Total)
}

func TestQuoteShippingThreshold(t *testing.T) {
	engine := NewEngine(testConfig())

	atThreshold := engine.Quote([]models.CartItem{line(50.00, 1)})
	assert.True(t, atThreshold.ShippingCost.IsZero(), "shipping at threshold %s", atThreshold.ShippingCost)

	belowThreshold := engine.Quote([]models.CartItem{line(49.99, 1)})
	assert.True(t, belowThreshold.ShippingCost.Equal(decimal.RequireFromString("25.00")),
		"shipping below threshold %s", belowThreshold.ShippingCost)
}

func TestQuoteTotalAlwaysSumOfParts(t *testing.T) {
	engine := NewEngine(testConfig())

	quote := engine.Quote([]models.CartItem{line(12.49, 3), line(0.99, 7)})
	sum := quote.Subtotal.Add(quote.ShippingCost).Add(quote.Tax)
	assert.True(t, quote.Total.Equal(sum), "total %s parts %s", quote.Total, sum)
}

func TestQuoteEmptyCart(t *testing.T) {
	engine := NewEngine(testConfig())

	quote := engine.Quote(nil)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Tax.IsZero())
	// an empty cart is below the threshold so the flat fee applies
	assert.True(t, quote.ShippingCost.Equal(decimal.RequireFromString("25.00")))
}
