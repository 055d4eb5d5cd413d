package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address is a shipping address record. Orders reference it by id only.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Street    string             `bson:"street" json:"street"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	ZipCode   string             `bson:"zipcode" json:"zipcode"`
	Country   string             `bson:"country" json:"country"`
	Phone     string             `bson:"phone" json:"phone"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
}

// PaymentType is the customer's selected payment method kind.
type PaymentType string

const (
	PaymentCard           PaymentType = "card"
	PaymentPaypal         PaymentType = "paypal"
	PaymentCashOnDelivery PaymentType = "cash_on_delivery"
)

// Valid reports whether the payment type is one of the supported kinds.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentCard, PaymentPaypal, PaymentCashOnDelivery:
		return true
	}
	return false
}

// PaymentMethod is a stored payment selection. Details carries the
// type-specific fields (card last four, paypal email, ...) opaquely.
type PaymentMethod struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Type      PaymentType        `bson:"type" json:"type"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
	Details   map[string]string  `bson:"details,omitempty" json:"details,omitempty"`
}
