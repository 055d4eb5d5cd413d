package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/franzhentze92/botanic-care-backend/services"
)

// ProductController serves read-only catalog data.
type ProductController struct {
	Catalog *services.CatalogGateway
}

// NewProductController creates a new ProductController
func NewProductController(catalog *services.CatalogGateway) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProducts retrieves all products
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Catalog.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.ParseInt(params["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := pc.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetIngredients retrieves formulation ingredients, optionally by kind
func (pc *ProductController) GetIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := pc.Catalog.ListIngredients(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		http.Error(w, "Error fetching ingredients", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ingredients)
}
