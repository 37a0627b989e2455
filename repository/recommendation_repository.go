package repository

import (
	"backend/model"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecommendationRepository struct {
	collection *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{
		collection: db.Collection("recommendations"),
	}
}

func (r *RecommendationRepository) Save(ctx context.Context, rec model.Recommendation) error {
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

// FindRecentBySymbol returns the latest recommendations for a symbol,
// newest first.
func (r *RecommendationRepository) FindRecentBySymbol(ctx context.Context, symbol string, limit int64) ([]model.Recommendation, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"symbol": symbol}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []model.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	return recs, nil
}
