package repository

import (
	"backend/model"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PortfolioAnalysisDoc is the stored snapshot of one portfolio risk run.
type PortfolioAnalysisDoc struct {
	Broker          model.BrokerType       `bson:"broker"`
	Metrics         model.PortfolioMetrics `bson:"metrics"`
	AssetAllocation model.AssetAllocation  `bson:"assetAllocation"`
	Recommendations []string               `bson:"recommendations"`
	CreatedAt       time.Time              `bson:"createdAt"`
}

type AnalysisRepository struct {
	collection *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{
		collection: db.Collection("portfolio_analyses"),
	}
}

func (r *AnalysisRepository) Save(ctx context.Context, doc PortfolioAnalysisDoc) error {
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *AnalysisRepository) FindLatest(ctx context.Context, broker model.BrokerType) (*PortfolioAnalysisDoc, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var doc PortfolioAnalysisDoc
	err := r.collection.FindOne(ctx, bson.M{"broker": broker}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest analysis: %w", err)
	}

	return &doc, nil
}
