package controllers

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/franzhentze92/botanic-care-backend/models"
	"github.com/franzhentze92/botanic-care-backend/pricing"
	"github.com/franzhentze92/botanic-care-backend/services"
	"github.com/franzhentze92/botanic-care-backend/store"
)

// FormulationController handles custom-formulation requests: price quotes,
// draft creation and moving a formulation into the cart.
type FormulationController struct {
	Formulations *services.FormulationService
	Composer     *pricing.Composer
	Carts        *store.Manager
	BasePrice    decimal.Decimal
}

// NewFormulationController creates a new FormulationController
func NewFormulationController(formulations *services.FormulationService, composer *pricing.Composer, carts *store.Manager, basePrice decimal.Decimal) *FormulationController {
	return &FormulationController{
		Formulations: formulations,
		Composer:     composer,
		Carts:        carts,
		BasePrice:    basePrice,
	}
}

// syntheticProductID hashes the whole ObjectID. The leading eight bytes
// alone repeat within a second for one process, which would merge
// distinct formulations into a single cart line.
func syntheticProductID(id primitive.ObjectID) int64 {
	h := fnv.New64a()
	h.Write(id[:])
	return -int64(h.Sum64() >> 1)
}

type formulationInput struct {
	OilID      string   `json:"oil_id"`
	ExtractIDs []string `json:"extract_ids"`
	FunctionID string   `json:"function_id"`
	Name       string   `json:"name,omitempty"`
}

func (fc *FormulationController) price(r *http.Request, input formulationInput) (decimal.Decimal, error) {
	return fc.Composer.Price(r.Context(), pricing.Selection{
		OilID:      input.OilID,
		ExtractIDs: input.ExtractIDs,
		FunctionID: input.FunctionID,
		BasePrice:  &fc.BasePrice,
	})
}

// QuotePrice composes the price for a selection without persisting anything
func (fc *FormulationController) QuotePrice(w http.ResponseWriter, r *http.Request) {
	var input formulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	finalPrice, err := fc.price(r, input)
	if err != nil {
		var compErr *pricing.CompositionError
		if errors.As(err, &compErr) {
			http.Error(w, compErr.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "Error composing price", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"base_price":  fc.BasePrice.InexactFloat64(),
		"final_price": finalPrice.InexactFloat64(),
	})
}

// Create persists a draft formulation with its composed price
func (fc *FormulationController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input formulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	finalPrice, err := fc.price(r, input)
	if err != nil {
		var compErr *pricing.CompositionError
		if errors.As(err, &compErr) {
			http.Error(w, compErr.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "Error composing price", http.StatusInternalServerError)
		return
	}

	id, err := fc.Formulations.Create(r.Context(), models.Formulation{
		UserID:     claims.UserID,
		OilID:      input.OilID,
		ExtractIDs: input.ExtractIDs,
		FunctionID: input.FunctionID,
		Name:       input.Name,
		BasePrice:  fc.BasePrice.InexactFloat64(),
		FinalPrice: finalPrice.InexactFloat64(),
	})
	if err != nil {
		http.Error(w, "Error creating formulation", http.StatusInternalServerError)
		return
	}

	formulation, err := fc.Formulations.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Error loading formulation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, formulation)
}

// AddToCart snapshots the formulation as a cart product and marks it in_cart
func (fc *FormulationController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	formulation, err := fc.Formulations.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Formulation not found", http.StatusNotFound)
		return
	}

	if err := fc.Formulations.UpdateStatus(r.Context(), id, models.StatusInCart); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	name := formulation.Name
	if name == "" {
		name = "Custom Formulation"
	}
	cart := fc.Carts.For(claims.UserID)
	cart.AddToCart(models.Product{
		// Synthetic negative id: keeps distinct formulations on distinct
		// cart lines and out of the catalog id space.
		ID:    syntheticProductID(formulation.ID),
		Name:  name,
		Price: formulation.FinalPrice,
		SKU:   formulation.SKU,
	}, 1)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Formulation added to cart",
		"cart":    viewOf(cart.State()),
	})
}
