package models

import "github.com/shopspring/decimal"

// Quantity bounds enforced at the API layer. The cart itself accumulates
// whatever it is told so repeated adds merge instead of failing.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// CartItem is one cart line: a product snapshot plus a quantity.
type CartItem struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// WishlistItem is a saved product. The wishlist behaves as a set keyed by
// product id.
type WishlistItem struct {
	Product Product `bson:"product" json:"product"`
}

// CartState is the full client cart: line items plus wishlist. It is owned
// by the cart store and must be treated as read-only everywhere else.
type CartState struct {
	Items    []CartItem     `json:"items"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// CartTotal sums price × quantity over all items, rounded to cents.
func (s CartState) CartTotal() float64 {
	total := decimal.Zero
	for _, item := range s.Items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// ItemCount sums quantities over all cart lines.
func (s CartState) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// WishlistCount returns the number of wishlist entries.
func (s CartState) WishlistCount() int {
	return len(s.Wishlist)
}

// IsInWishlist reports whether the product id is already saved.
func (s CartState) IsInWishlist(productID int64) bool {
	for _, entry := range s.Wishlist {
		if entry.Product.ID == productID {
			return true
		}
	}
	return false
}
