// Package services holds the MongoDB-backed collaborators consumed by the
// checkout pipeline and the HTTP controllers.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/franzhentze92/botanic-care-backend/models"
)

const databaseName = "botaniccare"

const serviceTimeout = 5 * time.Second

// AddressService persists shipping addresses.
type AddressService struct {
	Collection *mongo.Collection
}

// NewAddressService creates an AddressService.
func NewAddressService(client *mongo.Client) *AddressService {
	return &AddressService{
		Collection: client.Database(databaseName).Collection("addresses"),
	}
}

// CreateAddress inserts the address and returns its id.
func (s *AddressService) CreateAddress(ctx context.Context, address models.Address) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	result, err := s.Collection.InsertOne(ctx, address)
	if err != nil {
		return "", err
	}
	return objectIDHex(result.InsertedID)
}
