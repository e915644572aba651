package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique indexes the domain invariants rely on:
// account usernames and emails, product SKUs and country codes are each
// globally unique. Duplicate inserts surface as duplicate-key errors that the
// repositories translate into domain errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		collection string
		keys       bson.D
	}{
		{accountCollection, bson.D{{Key: "username", Value: 1}}},
		{accountCollection, bson.D{{Key: "email", Value: 1}}},
		{productCollection, bson.D{{Key: "sku", Value: 1}}},
		{countryCollection, bson.D{{Key: "code", Value: 1}}},
	}

	for _, spec := range specs {
		_, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    spec.keys,
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("ensure index on %s: %w", spec.collection, err)
		}
	}
	return nil
}
