package store

import "github.com/franzhentze92/botanic-care-backend/models"

// Outcome tells the caller which user-visible effect a dispatch had, so the
// API layer can word its notification ("added" vs "quantity updated").
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeItemAdded
	OutcomeQuantityUpdated
	OutcomeWishlistAdded
	OutcomeAlreadyInWishlist
)

// Reduce applies one action to the state and returns the next state. It is
// pure: the input state is never mutated, slices are copied before change.
func Reduce(state models.CartState, action Action) (models.CartState, Outcome) {
	switch a := action.(type) {
	case AddToCart:
		items := cloneItems(state.Items)
		for i := range items {
			if items[i].Product.ID == a.Product.ID {
				items[i].Quantity += a.Quantity
				state.Items = items
				return state, OutcomeQuantityUpdated
			}
		}
		state.Items = append(items, models.CartItem{Product: a.Product, Quantity: a.Quantity})
		return state, OutcomeItemAdded

	case RemoveFromCart:
		items := make([]models.CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID != a.ProductID {
				items = append(items, item)
			}
		}
		state.Items = items
		return state, OutcomeNone

	case UpdateQuantity:
		items := cloneItems(state.Items)
		for i := range items {
			if items[i].Product.ID == a.ProductID {
				items[i].Quantity = a.Quantity
				break
			}
		}
		state.Items = items
		return state, OutcomeNone

	case ClearCart:
		state.Items = nil
		return state, OutcomeNone

	case AddToWishlist:
		if state.IsInWishlist(a.Product.ID) {
			return state, OutcomeAlreadyInWishlist
		}
		wishlist := cloneWishlist(state.Wishlist)
		state.Wishlist = append(wishlist, models.WishlistItem{Product: a.Product})
		return state, OutcomeWishlistAdded

	case RemoveFromWishlist:
		wishlist := make([]models.WishlistItem, 0, len(state.Wishlist))
		for _, entry := range state.Wishlist {
			if entry.Product.ID != a.ProductID {
				wishlist = append(wishlist, entry)
			}
		}
		state.Wishlist = wishlist
		return state, OutcomeNone

	case ClearWishlist:
		state.Wishlist = nil
		return state, OutcomeNone
	}

	return state, OutcomeNone
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

func cloneWishlist(entries []models.WishlistItem) []models.WishlistItem {
	out := make([]models.WishlistItem, len(entries))
	copy(out, entries)
	return out
}
