package order

import (
	"context"
	"fmt"
	"time"

	"brewvoice/database"
	"brewvoice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepo implements Repository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates an order repository on the shared Mongo client.
func NewMongoOrderRepo() Repository {
	coll := database.MongoClient.Database("brewvoice").Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a newly placed order.
func (r *MongoOrderRepo) Insert(ctx context.Context, order *models.PlacedOrder) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetBySession fetches the order placed under a session id, nil when none
// exists.
func (r *MongoOrderRepo) GetBySession(ctx context.Context, sessionID string) (*models.PlacedOrder, error) {
	var order models.PlacedOrder
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order for session %s: %w", sessionID, err)
	}
	return &order, nil
}

// DeleteBySession removes the order and its line items for a session.
func (r *MongoOrderRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	result, err := r.coll.DeleteMany(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return fmt.Errorf("failed to delete order for session %s: %w", sessionID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no order found for session %s", sessionID)
	}
	return nil
}
