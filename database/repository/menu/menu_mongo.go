package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brewvoice/database"
	"brewvoice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMenuRepo implements Repository using MongoDB.
type MongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo creates a menu repository on the shared Mongo client.
func NewMongoMenuRepo() Repository {
	coll := database.MongoClient.Database("brewvoice").Collection("menu_items")
	repo := &MongoMenuRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMenuRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves the full menu.
func (r *MongoMenuRepo) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menu: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	for cursor.Next(ctx) {
		var item models.MenuItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByName retrieves one menu item, nil when it is not on the menu.
func (r *MongoMenuRepo) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.coll.FindOne(ctx, bson.M{"name": strings.ToLower(name)}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu item %q: %w", name, err)
	}
	return &item, nil
}

// Seed upserts the given items so a fresh deployment has a menu.
func (r *MongoMenuRepo) Seed(ctx context.Context, items []models.MenuItem) error {
	for _, item := range items {
		filter := bson.M{"name": strings.ToLower(item.Name)}
		update := bson.M{"$set": bson.M{"name": strings.ToLower(item.Name), "price": item.Price}}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}
	return nil
}
