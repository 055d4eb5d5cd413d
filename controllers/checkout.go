package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/franzhentze92/botanic-care-backend/checkout"
	"github.com/franzhentze92/botanic-care-backend/models"
	"github.com/franzhentze92/botanic-care-backend/store"
)

// OrderReader is the slice of the order repository the controller reads from.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
}

// CheckoutController submits checkouts and serves order history.
type CheckoutController struct {
	Orchestrator *checkout.Orchestrator
	Carts        *store.Manager
	Orders       OrderReader
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(orchestrator *checkout.Orchestrator, carts *store.Manager, orders OrderReader) *CheckoutController {
	return &CheckoutController{
		Orchestrator: orchestrator,
		Carts:        carts,
		Orders:       orders,
	}
}

// Submit runs the checkout pipeline for the authenticated user's cart
func (cc *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	cart := cc.Carts.For(claims.UserID)
	session, err := cc.Orchestrator.NewSession(cart, checkout.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := session.Submit(r.Context(), req)
	if err != nil {
		var validationErr *checkout.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		var collabErr *checkout.CollaboratorError
		if errors.As(err, &collabErr) {
			http.Error(w, collabErr.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "Checkout failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetOrders retrieves all orders for the authenticated user
func (cc *CheckoutController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := cc.Orders.ListOrders(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderItems retrieves the line items of one of the authenticated
// user's orders. Orders belonging to other users read as not found.
func (cc *CheckoutController) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := cc.Orders.GetOrder(r.Context(), orderID)
	if err != nil || order.UserID != claims.UserID {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	items, err := cc.Orders.ListOrderItems(r.Context(), orderID)
	if err != nil {
		http.Error(w, "Failed to retrieve order items", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
