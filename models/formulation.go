package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormulationStatus is the lifecycle stage of a custom formulation. The
// lifecycle is one-directional: draft -> in_cart -> ordered -> completed.
type FormulationStatus string

const (
	StatusDraft     FormulationStatus = "draft"
	StatusInCart    FormulationStatus = "in_cart"
	StatusOrdered   FormulationStatus = "ordered"
	StatusCompleted FormulationStatus = "completed"
)

var statusRank = map[FormulationStatus]int{
	StatusDraft:     0,
	StatusInCart:    1,
	StatusOrdered:   2,
	StatusCompleted: 3,
}

// Valid reports whether the status is one of the known lifecycle stages.
func (s FormulationStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to next is a forward transition.
// Backward moves are never allowed.
func (s FormulationStatus) CanTransitionTo(next FormulationStatus) bool {
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	return okFrom && okTo && to > from
}

// Formulation is a customer-assembled product: a carrier oil, one or more
// extracts and a function additive. Its price is composed from ingredient
// modifiers on top of a base price.
type Formulation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	OilID      string             `bson:"oil_id" json:"oil_id"`
	ExtractIDs []string           `bson:"extract_ids" json:"extract_ids"`
	FunctionID string             `bson:"function_id" json:"function_id"`
	BasePrice  float64            `bson:"base_price" json:"base_price"`
	FinalPrice float64            `bson:"final_price" json:"final_price"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	SKU        string             `bson:"sku" json:"sku"`
	Status     FormulationStatus  `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
