// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/franzhentze92/botanic-care-backend/controllers"
	"github.com/franzhentze92/botanic-care-backend/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	formulationController *controllers.FormulationController,
	checkoutController *controllers.CheckoutController,
) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Catalog routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/ingredients", productController.GetIngredients).Methods("GET")
	router.HandleFunc("/formulations/price", formulationController.QuotePrice).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{product_id}", cartController.UpdateQuantity).Methods("PUT")
	protected.HandleFunc("/cart/items/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Wishlist routes
	protected.HandleFunc("/wishlist", cartController.AddToWishlist).Methods("POST")
	protected.HandleFunc("/wishlist", cartController.ClearWishlist).Methods("DELETE")
	protected.HandleFunc("/wishlist/{product_id}", cartController.RemoveFromWishlist).Methods("DELETE")

	// Formulation routes
	protected.HandleFunc("/formulations", formulationController.Create).Methods("POST")
	protected.HandleFunc("/formulations/{id}/cart", formulationController.AddToCart).Methods("POST")

	// Checkout routes
	protected.HandleFunc("/checkout", checkoutController.Submit).Methods("POST")
	protected.HandleFunc("/orders", checkoutController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}/items", checkoutController.GetOrderItems).Methods("GET")
}
