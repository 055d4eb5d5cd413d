package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/franzhentze92/botanic-care-backend/models"
	"github.com/franzhentze92/botanic-care-backend/services"
	"github.com/franzhentze92/botanic-care-backend/store"
)

// CartController handles cart and wishlist requests. It enforces the
// [1,10] quantity bound; the store itself just accumulates.
type CartController struct {
	Carts   *store.Manager
	Catalog *services.CatalogGateway
}

// NewCartController creates a new CartController
func NewCartController(carts *store.Manager, catalog *services.CatalogGateway) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

type cartView struct {
	Items         []models.CartItem     `json:"items"`
	Wishlist      []models.WishlistItem `json:"wishlist"`
	CartTotal     float64               `json:"cart_total"`
	ItemCount     int                   `json:"item_count"`
	WishlistCount int                   `json:"wishlist_count"`
}

func viewOf(state models.CartState) cartView {
	return cartView{
		Items:         state.Items,
		Wishlist:      state.Wishlist,
		CartTotal:     state.CartTotal(),
		ItemCount:     state.ItemCount(),
		WishlistCount: state.WishlistCount(),
	}
}

func (cc *CartController) storeFor(r *http.Request) (*store.Store, bool) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		return nil, false
	}
	return cc.Carts.For(claims.UserID), true
}

// GetCart retrieves the user's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}

// AddToCart adds a catalog product to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < models.MinQuantity || input.Quantity > models.MaxQuantity {
		http.Error(w, fmt.Sprintf("Quantity must be between %d and %d", models.MinQuantity, models.MaxQuantity), http.StatusBadRequest)
		return
	}

	product, err := cc.Catalog.GetProduct(r.Context(), input.ProductID)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	outcome := cart.AddToCart(product, input.Quantity)
	message := "Item added to cart"
	if outcome == store.OutcomeQuantityUpdated {
		message = "Cart quantity updated"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"cart":    viewOf(cart.State()),
	})
}

// UpdateQuantity replaces the quantity of one cart line
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["product_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Quantity < models.MinQuantity || input.Quantity > models.MaxQuantity {
		http.Error(w, fmt.Sprintf("Quantity must be between %d and %d", models.MinQuantity, models.MaxQuantity), http.StatusBadRequest)
		return
	}

	cart.UpdateQuantity(productID, input.Quantity)
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}

// RemoveFromCart removes one cart line
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["product_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cart.RemoveFromCart(productID)
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}

// ClearCart empties the cart lines, keeping the wishlist
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	cart.ClearCart()
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}

// AddToWishlist saves a product to the wishlist
func (cc *CartController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID int64 `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := cc.Catalog.GetProduct(r.Context(), input.ProductID)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	outcome := cart.AddToWishlist(product)
	message := "Item added to wishlist"
	if outcome == store.OutcomeAlreadyInWishlist {
		message = "Item is already in the wishlist"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"cart":    viewOf(cart.State()),
	})
}

// RemoveFromWishlist drops one wishlist entry
func (cc *CartController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["product_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cart.RemoveFromWishlist(productID)
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}

// ClearWishlist empties the wishlist, keeping the cart lines
func (cc *CartController) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	cart, ok := cc.storeFor(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	cart.ClearWishlist()
	writeJSON(w, http.StatusOK, viewOf(cart.State()))
}
