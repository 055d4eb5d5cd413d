// Package store implements the client cart as a reducer over a closed set of
// actions, backed by whole-state persistence under one namespaced key.
package store

import "github.com/franzhentze92/botanic-care-backend/models"

// Action is a cart state transition request. The set of implementations is
// closed; every mutation goes through Reduce.
type Action interface {
	isAction()
}

// AddToCart inserts a product or, when the product id is already present,
// increments the existing line's quantity.
type AddToCart struct {
	Product  models.Product
	Quantity int
}

// RemoveFromCart drops the line with the given product id. Absent ids are a
// no-op.
type RemoveFromCart struct {
	ProductID int64
}

// UpdateQuantity replaces the quantity on the line with the given product id.
// Absent ids are a no-op.
type UpdateQuantity struct {
	ProductID int64
	Quantity  int
}

// ClearCart empties the cart lines and leaves the wishlist alone.
type ClearCart struct{}

// AddToWishlist saves a product. Duplicate product ids leave the wishlist
// unchanged.
type AddToWishlist struct {
	Product models.Product
}

// RemoveFromWishlist drops the wishlist entry with the given product id.
type RemoveFromWishlist struct {
	ProductID int64
}

// ClearWishlist empties the wishlist and leaves the cart lines alone.
type ClearWishlist struct{}

func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (UpdateQuantity) isAction()     {}
func (ClearCart) isAction()          {}
func (AddToWishlist) isAction()      {}
func (RemoveFromWishlist) isAction() {}
func (ClearWishlist) isAction()      {}
