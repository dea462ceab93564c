package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoRecord is the stored document; IDs are kept as strings.
type mongoRecord struct {
	ID        string    `bson:"_id"`
	Rows      int       `bson:"rows"`
	Columns   int       `bson:"columns"`
	Algorithm string    `bson:"algorithm"`
	Seed      int64     `bson:"seed"`
	Key       string    `bson:"key,omitempty"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toMongo(r *Record) mongoRecord {
	return mongoRecord{
		ID:        r.ID.String(),
		Rows:      r.Rows,
		Columns:   r.Columns,
		Algorithm: r.Algorithm,
		Seed:      r.Seed,
		Key:       r.Key,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func (d mongoRecord) record() (*Record, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("store: bad document id %q: %w", d.ID, err)
	}

	return &Record{
		ID:        id,
		Rows:      d.Rows,
		Columns:   d.Columns,
		Algorithm: d.Algorithm,
		Seed:      d.Seed,
		Key:       d.Key,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
	}, nil
}

// Mongo is a Repository backed by one MongoDB collection.
type Mongo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongo returns a Mongo repository over dbName.collectionName.
func NewMongo(client *mongo.Client, dbName, collectionName string) *Mongo {
	return &Mongo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// EnsureIndexes creates the unique index on seed keys. Records without a key
// are left out of it.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).
			SetPartialFilterExpression(bson.M{"key": bson.M{"$exists": true}}),
	})
	if err != nil {
		return fmt.Errorf("store: creating key index: %w", err)
	}

	return nil
}

// Save upserts r as one document keyed by its ID.
func (s *Mongo) Save(ctx context.Context, r *Record) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := toMongo(r)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("store: saving record %s: %w", r.ID, err)
	}

	return nil
}

// ByID returns the record with id, or ErrNotFound.
func (s *Mongo) ByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *Mongo) findOne(ctx context.Context, filter bson.M) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc mongoRecord
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: loading record: %w", err)
	}

	return doc.record()
}

// FindOrCreate inserts the created record only if no document has key yet,
// then returns whichever document holds the key.
func (s *Mongo) FindOrCreate(ctx context.Context, key string, create func() (*Record, error)) (*Record, bool, error) {
	existing, err := s.findOne(ctx, bson.M{"key": key})
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	r, err := create()
	if err != nil {
		return nil, false, err
	}
	r.Key = key

	uctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	res, err := s.collection.UpdateOne(uctx,
		bson.M{"key": key},
		bson.M{"$setOnInsert": toMongo(r)},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, fmt.Errorf("store: inserting record %s: %w", r.ID, err)
	}
	if res.UpsertedCount == 1 {
		return r, true, nil
	}
	winner, err := s.findOne(ctx, bson.M{"key": key})

	return winner, false, err
}
