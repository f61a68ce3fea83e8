package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by every Store operation when the process
// started without a live database handle.
var ErrNotConnected = errors.New("document store is not connected")

// Store is the thin adapter over the shared database handle. It performs no
// validation and no retries; every failure, including a missing connection,
// surfaces directly to the caller. The handle is process-wide, initialized
// once at startup, and may be nil when the database was unreachable.
type Store struct {
	database *mongo.Database
}

func NewStore(database *mongo.Database) *Store {
	return &Store{
		database: database,
	}
}

func (s *Store) Connected() bool {
	return s != nil && s.database != nil
}

// Name returns the database name, or an empty string when disconnected.
func (s *Store) Name() string {
	if !s.Connected() {
		return ""
	}
	return s.database.Name()
}

// Insert writes one document and returns its store-assigned id.
func (s *Store) Insert(ctx context.Context, collection string, document any) (primitive.ObjectID, error) {
	if !s.Connected() {
		return primitive.NilObjectID, ErrNotConnected
	}

	res, err := s.database.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id, nil
}

// FindOne returns the first document matching the filter. A miss surfaces as
// mongo.ErrNoDocuments; repositories translate it to their not-found error.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}

	var doc bson.M
	if err := s.database.Collection(collection).FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// FindMany returns matching documents in the given sort order. A limit of
// zero or less means no limit.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64) ([]bson.M, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}

	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := s.database.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// UpdateOne applies the update to the first matching document and reports how
// many documents matched.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M, upsert bool) (int64, error) {
	if !s.Connected() {
		return 0, ErrNotConnected
	}

	opts := options.Update().SetUpsert(upsert)

	res, err := s.database.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, err
	}

	return res.MatchedCount, nil
}

// DeleteOne removes the first matching document and reports how many were
// deleted.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if !s.Connected() {
		return 0, ErrNotConnected
	}

	res, err := s.database.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

// Collections lists the collection names, used by the diagnostic endpoint.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}

	return s.database.ListCollectionNames(ctx, bson.D{})
}
