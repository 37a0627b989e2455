package repository

import (
	"backend/database"
	"backend/model"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepository struct {
	collection *mongo.Collection
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{
		collection: db.Collection("alerts"),
	}
}

// Save upserts by the symbol:condition id so re-creating an alert replaces it.
func (r *AlertRepository) Save(ctx context.Context, alert model.Alert) error {
	filter := bson.M{"_id": alert.ID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, alert, opts)
	return err
}

func (r *AlertRepository) FindAll(ctx context.Context) ([]model.Alert, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []model.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}

	return alerts, nil
}

func (r *AlertRepository) FindActive(ctx context.Context) ([]model.Alert, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []model.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}

	return alerts, nil
}

func (r *AlertRepository) SetActive(ctx context.Context, id string, active bool) (*model.Alert, error) {
	return database.UpdateGeneric[model.Alert](ctx, r.collection, bson.M{"_id": id}, bson.M{"active": active})
}

func (r *AlertRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
