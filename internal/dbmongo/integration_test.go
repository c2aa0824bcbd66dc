package dbmongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/config"
)

// Runs against the docker-compose MongoDB when MONGO_INTEGRATION=1.
func TestTombstoneStore_Integration(t *testing.T) {
	if os.Getenv("MONGO_INTEGRATION") != "1" {
		t.Skip("set MONGO_INTEGRATION=1 to run against a live MongoDB")
	}
	ctx := context.Background()

	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{
			Host:       getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:       getEnvOrDefault("MONGO_PORT", "27017"),
			Username:   getEnvOrDefault("MONGO_USER", "admin"),
			Password:   getEnvOrDefault("MONGO_PASSWORD", "admin123"),
			Database:   getEnvOrDefault("MONGO_DB", "gosocial_test"),
			Collection: "tombstones_it",
		},
	}

	client, err := NewMongoConnection(cfg, nil)
	require.NoError(t, err, "ensure MongoDB is running: docker-compose up -d mongo")
	defer client.Close(ctx)

	store := client.Tombstones(cfg)
	t.Cleanup(func() { client.Database.Collection(cfg.MongoDB.Collection).Drop(ctx) })
	require.NoError(t, store.EnsureIndexes(ctx))

	base := time.Now().UnixMilli()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(ctx, models.Tombstone{
			ItemID:    id,
			ItemType:  models.ItemTypeMessage,
			DeletedAt: base + int64(i),
		}))
	}

	got, err := store.Since(ctx, base, base+2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ItemID)
	assert.Equal(t, "c", got[1].ItemID)
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
