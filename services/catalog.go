package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/franzhentze92/botanic-care-backend/models"
)

// Ingredient is one formulation building block (oil, extract or function
// additive) with its price modifier.
type Ingredient struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Kind          string  `bson:"kind" json:"kind"`
	PriceModifier float64 `bson:"price_modifier" json:"price_modifier"`
}

// CatalogGateway reads products and ingredient modifiers. The storefront
// consumes the catalog, it never writes it.
type CatalogGateway struct {
	Products    *mongo.Collection
	Ingredients *mongo.Collection
}

// NewCatalogGateway creates a CatalogGateway.
func NewCatalogGateway(client *mongo.Client) *CatalogGateway {
	db := client.Database(databaseName)
	return &CatalogGateway{
		Products:    db.Collection("products"),
		Ingredients: db.Collection("ingredients"),
	}
}

// GetProduct loads one product snapshot by its numeric id.
func (g *CatalogGateway) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	var product models.Product
	if err := g.Products.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return models.Product{}, fmt.Errorf("product %d: %w", id, err)
	}
	return product, nil
}

// ListProducts returns the whole catalog.
func (g *CatalogGateway) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	cursor, err := g.Products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// IngredientModifier resolves an ingredient id to its price modifier. It
// implements pricing.ModifierSource.
func (g *CatalogGateway) IngredientModifier(ctx context.Context, ingredientID string) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	var ingredient Ingredient
	if err := g.Ingredients.FindOne(ctx, bson.M{"id": ingredientID}).Decode(&ingredient); err != nil {
		return decimal.Zero, fmt.Errorf("ingredient %q: %w", ingredientID, err)
	}
	return decimal.NewFromFloat(ingredient.PriceModifier), nil
}

// ListIngredients returns the ingredients of one kind ("oil", "extract" or
// "function"), or all of them when kind is empty.
func (g *CatalogGateway) ListIngredients(ctx context.Context, kind string) ([]Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	cursor, err := g.Ingredients.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ingredients []Ingredient
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}
