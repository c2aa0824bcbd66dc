// Package dbmongo holds the optional MongoDB deletion log.
package dbmongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gosocial-realtime/internal/config"
	applog "gosocial-realtime/internal/logger"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config, log *slog.Logger) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	applog.OrDefault(log).Info("mongodb connected",
		"host", c.MongoDB.Host,
		"database", c.MongoDB.Database,
	)

	return &MongoClient{
		Client:   client,
		Database: client.Database(c.MongoDB.Database),
	}, nil
}

// Tombstones returns the deletion log collection named in the config.
func (mc *MongoClient) Tombstones(c *config.Config) *TombstoneStore {
	return NewTombstoneStore(mc.Database.Collection(c.MongoDB.Collection))
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
