package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a persisted checkout result. Totals are computed once at checkout
// time and never recomputed; total == subtotal + shipping_cost + tax.
type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID            string             `bson:"user_id" json:"user_id"`
	Number            string             `bson:"number" json:"number"`
	Subtotal          float64            `bson:"subtotal" json:"subtotal"`
	ShippingCost      float64            `bson:"shipping_cost" json:"shipping_cost"`
	Tax               float64            `bson:"tax" json:"tax"`
	Total             float64            `bson:"total" json:"total"`
	ShippingAddressID string             `bson:"shipping_address_id" json:"shipping_address_id"`
	PaymentMethodID   string             `bson:"payment_method_id" json:"payment_method_id"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// OrderItem is one purchased line, snapshotted at checkout time.
// ProductID is nil exactly when the line is a custom formulation, and
// TotalPrice == UnitPrice * Quantity.
type OrderItem struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID             primitive.ObjectID `bson:"order_id" json:"order_id"`
	ProductID           *int64             `bson:"product_id" json:"product_id"`
	ProductName         string             `bson:"product_name" json:"product_name"`
	ProductImageURL     string             `bson:"product_image_url,omitempty" json:"product_image_url,omitempty"`
	ProductSKU          string             `bson:"product_sku,omitempty" json:"product_sku,omitempty"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	UnitPrice           float64            `bson:"unit_price" json:"unit_price"`
	TotalPrice          float64            `bson:"total_price" json:"total_price"`
	IsCustomFormulation bool               `bson:"is_custom_formulation" json:"is_custom_formulation"`
	CustomFormulationID string             `bson:"custom_formulation_id,omitempty" json:"custom_formulation_id,omitempty"`
}
