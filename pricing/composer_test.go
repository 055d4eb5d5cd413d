package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModifiers struct {
	modifiers map[string]string
	failing   map[string]error
	calls     atomic.Int64
}

func (f *fakeModifiers) IngredientModifier(_ context.Context, id string) (decimal.Decimal, error) {
	f.calls.Add(1)
	if err, ok := f.failing[id]; ok {
		return decimal.Zero, err
	}
	raw, ok := f.modifiers[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("ingredient %q not found", id)
	}
	return decimal.RequireFromString(raw), nil
}

func selection() Selection {
	return Selection{
		OilID:      "oil-jojoba",
		ExtractIDs: []string{"ext-chamomile", "ext-calendula"},
		FunctionID: "fn-relax",
	}
}

func TestPriceComposition(t *testing.T) {
	source := &fakeModifiers{modifiers: map[string]string{
		"oil-jojoba":    "5.00",
		"ext-chamomile": "2.50",
		"ext-calendula": "2.50",
		"fn-relax":      "3.00",
	}}
	composer := NewComposer(source)

	price, err := composer.Price(context.Background(), selection())
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("38.00")), "price %s", price)

	// identical inputs give the identical result
	again, err := composer.Price(context.Background(), selection())
	require.NoError(t, err)
	assert.True(t, price.Equal(again))
}

func TestPriceBaseOverride(t *testing.T) {
	source := &fakeModifiers{modifiers: map[string]string{
		"oil-jojoba":    "5.00",
		"ext-chamomile": "2.50",
		"ext-calendula": "2.50",
		"fn-relax":      "3.00",
	}}
	composer := NewComposer(source)

	base := decimal.RequireFromString("30.00")
	sel := selection()
	sel.BasePrice = &base

	price, err := composer.Price(context.Background(), sel)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("43.00")), "price %s", price)
}

func TestPriceFailsAtomically(t *testing.T) {
	source := &fakeModifiers{
		modifiers: map[string]string{
			"oil-jojoba":    "5.00",
			"ext-chamomile": "2.50",
			"fn-relax":      "3.00",
		},
		failing: map[string]error{
			"ext-calendula": errors.New("catalog unavailable"),
		},
	}
	composer := NewComposer(source)

	price, err := composer.Price(context.Background(), selection())
	require.Error(t, err)

	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "ext-calendula", compErr.Ingredient)
	assert.True(t, price.IsZero(), "no partial price on failure, got %s", price)
}

func TestPriceRejectsIncompleteSelection(t *testing.T) {
	source := &fakeModifiers{modifiers: map[string]string{}}
	composer := NewComposer(source)

	_, err := composer.Price(context.Background(), Selection{FunctionID: "fn-relax"})
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "oil", compErr.Ingredient)
	assert.Equal(t, int64(0), source.calls.Load(), "no lookup before validation")
}

func TestPriceRounding(t *testing.T) {
	source := &fakeModifiers{modifiers: map[string]string{
		"oil-jojoba":    "1.005",
		"ext-chamomile": "0",
		"ext-calendula": "0",
		"fn-relax":      "0",
	}}
	composer := NewComposer(source)

	price, err := composer.Price(context.Background(), selection())
	require.NoError(t, err)
	// half-up to cents: 25 + 1.005 = 26.005 -> 26.01
	assert.True(t, price.Equal(decimal.RequireFromString("26.01")), "price %s", price)
}
