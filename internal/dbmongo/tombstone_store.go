package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gosocial-realtime/internal/chat/models"
)

type tombstoneDoc struct {
	ItemID    string `bson:"item_id"`
	ItemType  string `bson:"item_type"`
	DeletedAt int64  `bson:"deleted_at"`
}

// TombstoneStore is an append-only deletion log in a single collection.
type TombstoneStore struct {
	coll *mongo.Collection
}

func NewTombstoneStore(coll *mongo.Collection) *TombstoneStore {
	return &TombstoneStore{coll: coll}
}

// EnsureIndexes creates the deleted_at index delta reads range over.
func (s *TombstoneStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "deleted_at", Value: 1}},
		Options: options.Index().SetName("deleted_at_1"),
	})
	if err != nil {
		return fmt.Errorf("create tombstone index: %w", err)
	}
	return nil
}

func (s *TombstoneStore) Append(ctx context.Context, t models.Tombstone) error {
	_, err := s.coll.InsertOne(ctx, tombstoneDoc{
		ItemID:    t.ItemID,
		ItemType:  t.ItemType,
		DeletedAt: t.DeletedAt,
	})
	if err != nil {
		return fmt.Errorf("append tombstone %s: %w", t.ItemID, err)
	}
	return nil
}

// Since returns tombstones with DeletedAt in (after, upTo], oldest first.
func (s *TombstoneStore) Since(ctx context.Context, after, upTo int64) ([]models.Tombstone, error) {
	filter := bson.M{"deleted_at": bson.M{"$gt": after, "$lte": upTo}}
	opts := options.Find().SetSort(bson.D{{Key: "deleted_at", Value: 1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find tombstones: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []tombstoneDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tombstones: %w", err)
	}

	out := make([]models.Tombstone, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Tombstone{ItemID: d.ItemID, ItemType: d.ItemType, DeletedAt: d.DeletedAt})
	}
	return out, nil
}
