// internal/app/store/snapshot/mongo.go
package snapshot

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is a Backend that keeps the blob in a single document at a fixed
// _id. Shared deployments get MongoDB's single-document write atomicity
// for the whole snapshot.
type Mongo struct {
	c *mongo.Collection
}

type mongoDoc struct {
	ID   string           `bson:"_id"`
	Blob primitive.Binary `bson:"blob"`
}

// NewMongo returns a backend over the given collection.
func NewMongo(db *mongo.Database, collection string) *Mongo {
	return &Mongo{c: db.Collection(collection)}
}

func (m *Mongo) Load(ctx context.Context) ([]byte, bool, error) {
	var doc mongoDoc
	err := m.c.FindOne(ctx, bson.M{"_id": Key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot doc: %w", err)
	}
	return doc.Blob.Data, true, nil
}

func (m *Mongo) Store(ctx context.Context, b []byte) error {
	doc := mongoDoc{ID: Key, Blob: primitive.Binary{Data: b}}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.c.ReplaceOne(ctx, bson.M{"_id": Key}, doc, opts); err != nil {
		return fmt.Errorf("store snapshot doc: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.c.Database().Client().Disconnect(ctx)
}
