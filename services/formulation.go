package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/franzhentze92/botanic-care-backend/models"
)

// FormulationService persists custom formulations and walks them through
// their one-directional lifecycle.
type FormulationService struct {
	Collection *mongo.Collection
}

// NewFormulationService creates a FormulationService.
func NewFormulationService(client *mongo.Client) *FormulationService {
	return &FormulationService{
		Collection: client.Database(databaseName).Collection("formulations"),
	}
}

// Create inserts the formulation as a draft and stamps its SKU from the
// generated id. Returns the new id.
func (s *FormulationService) Create(ctx context.Context, formulation models.Formulation) (string, error) {
	formulation.ID = primitive.NewObjectID()
	formulation.SKU = models.CustomSKUPrefix + formulation.ID.Hex()
	formulation.CreatedAt = time.Now().UTC()
	if formulation.Status == "" {
		formulation.Status = models.StatusDraft
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	if _, err := s.Collection.InsertOne(ctx, formulation); err != nil {
		return "", err
	}
	return formulation.ID.Hex(), nil
}

// Get loads one formulation by id.
func (s *FormulationService) Get(ctx context.Context, id string) (models.Formulation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Formulation{}, fmt.Errorf("invalid formulation id %q: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	var formulation models.Formulation
	if err := s.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&formulation); err != nil {
		return models.Formulation{}, err
	}
	return formulation, nil
}

// statusUpdateCheck validates a requested lifecycle change. Repeating the
// current status is a no-op success so interrupted checkouts can be
// retried and items re-added to a cart; backward moves are rejected.
func statusUpdateCheck(current, next models.FormulationStatus) (noop bool, err error) {
	if !next.Valid() {
		return false, fmt.Errorf("unknown formulation status %q", next)
	}
	if current == next {
		return true, nil
	}
	if !current.CanTransitionTo(next) {
		return false, fmt.Errorf("cannot move from %q to %q", current, next)
	}
	return false, nil
}

// UpdateStatus advances the formulation's lifecycle. Setting the status it
// already holds succeeds without a write; backward transitions are rejected.
func (s *FormulationService) UpdateStatus(ctx context.Context, id string, status models.FormulationStatus) error {
	formulation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	noop, err := statusUpdateCheck(formulation.Status, status)
	if err != nil {
		return fmt.Errorf("formulation %s: %w", id, err)
	}
	if noop {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()

	_, err = s.Collection.UpdateOne(ctx,
		bson.M{"_id": formulation.ID},
		bson.M{"$set": bson.M{"status": status}})
	return err
}
