package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franzhentze92/botanic-care-backend/models"
)

func product(id int64, price float64) models.Product {
	return models.Product{ID: id, Name: "Lavender Oil", Price: price, SKU: "BC-001"}
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	state := models.CartState{}

	state, outcome := Reduce(state, AddToCart{Product: product(1, 10), Quantity: 2})
	assert.Equal(t, OutcomeItemAdded, outcome)

	state, outcome = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 3})
	assert.Equal(t, OutcomeQuantityUpdated, outcome)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestAddToCartKeepsDistinctProducts(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 1})
	state, _ = Reduce(state, AddToCart{Product: product(2, 20), Quantity: 1})

	assert.Len(t, state.Items, 2)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 1})

	next, _ := Reduce(state, RemoveFromCart{ProductID: 99})
	assert.Equal(t, state.Items, next.Items)
}

func TestRemoveFromCartDropsLine(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 1})
	state, _ = Reduce(state, AddToCart{Product: product(2, 20), Quantity: 1})

	state, _ = Reduce(state, RemoveFromCart{ProductID: 1})
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].Product.ID)
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 2})

	state, _ = Reduce(state, UpdateQuantity{ProductID: 1, Quantity: 7})
	assert.Equal(t, 7, state.Items[0].Quantity)

	// absent id is a no-op
	next, _ := Reduce(state, UpdateQuantity{ProductID: 42, Quantity: 1})
	assert.Equal(t, state.Items, next.Items)
}

func TestClearCartPreservesWishlist(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 2})
	state, _ = Reduce(state, AddToWishlist{Product: product(2, 20)})

	state, _ = Reduce(state, ClearCart{})
	assert.Empty(t, state.Items)
	assert.Len(t, state.Wishlist, 1)
}

func TestWishlistSetSemantics(t *testing.T) {
	state := models.CartState{}

	state, outcome := Reduce(state, AddToWishlist{Product: product(1, 10)})
	assert.Equal(t, OutcomeWishlistAdded, outcome)

	state, outcome = Reduce(state, AddToWishlist{Product: product(1, 10)})
	assert.Equal(t, OutcomeAlreadyInWishlist, outcome)
	assert.Len(t, state.Wishlist, 1)
}

func TestClearWishlistPreservesItems(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 1})
	state, _ = Reduce(state, AddToWishlist{Product: product(2, 20)})

	state, _ = Reduce(state, ClearWishlist{})
	assert.Empty(t, state.Wishlist)
	assert.Len(t, state.Items, 1)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := models.CartState{}
	state, _ = Reduce(state, AddToCart{Product: product(1, 10), Quantity: 2})

	before := state.Items[0].Quantity
	next, _ := Reduce(state, AddToCart{Product: product(1, 10), Quantity: 3})

	assert.Equal(t, before, state.Items[0].Quantity)
	assert.Equal(t, 5, next.Items[0].Quantity)
}
