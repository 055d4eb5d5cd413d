package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/franzhentze92/botanic-care-backend/models"
)

// OrderRepository persists orders and their line items in separate
// collections, written sequentially by the checkout pipeline.
type OrderRepository struct {
	Orders *mongo.Collection
	Items  *mongo.Collection
}

// NewOrderRepository creates an OrderRepository.
func NewOrderRepository(client *mongo.Client) *OrderRepository {
	db := client.Database(databaseName)
	return &OrderRepository{
		Orders: db.Collection("orders"),
		Items:  db.Collection("order_items"),
	}
}

// CreateOrder inserts the order and returns its id.
func (r *OrderRepository) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	result, err := r.Orders.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return objectIDHex(result.InsertedID)
}

// CreateOrderItem inserts one line item under the order.
func (r *OrderRepository) CreateOrderItem(ctx context.Context, orderID string, item models.OrderItem) error {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", orderID, err)
	}
	item.OrderID = oid

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	_, err = r.Items.InsertOne(ctx, item)
	return err
}

// GetOrder loads one order by id.
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("invalid order id %q: %w", orderID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	var order models.Order
	if err := r.Orders.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (r *OrderRepository) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Orders.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrderItems returns the line items of one order.
func (r *OrderRepository) ListOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q: %w", orderID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	cursor, err := r.Items.Find(ctx, bson.M{"order_id": oid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.OrderItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
