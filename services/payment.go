package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/franzhentze92/botanic-care-backend/models"
)

// PaymentMethodService persists payment method selections.
type PaymentMethodService struct {
	Collection *mongo.Collection
}

// NewPaymentMethodService creates a PaymentMethodService.
func NewPaymentMethodService(client *mongo.Client) *PaymentMethodService {
	return &PaymentMethodService{
		Collection: client.Database(databaseName).Collection("payment_methods"),
	}
}

// CreatePaymentMethod inserts the payment method and returns its id.
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod) (string, error) {
	if !method.Type.Valid() {
		return "", fmt.Errorf("unsupported payment type %q", method.Type)
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	result, err := s.Collection.InsertOne(ctx, method)
	if err != nil {
		return "", err
	}
	return objectIDHex(result.InsertedID)
}

func objectIDHex(inserted interface{}) (string, error) {
	id, ok := inserted.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", inserted)
	}
	return id.Hex(), nil
}
