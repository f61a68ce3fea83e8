package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type countdownRepository struct {
	store *db.Store
}

func NewCountdownRepository(store *db.Store) domain.CountdownRepository {
	return &countdownRepository{
		store: store,
	}
}

func (r *countdownRepository) Set(ctx context.Context, roomCode string, targetISO string) (domain.Document, error) {
	now := time.Now().UTC()

	// TODO: move created_at under $setOnInsert once product decides it should
	// survive updates. Today every write stamps both timestamps, so created_at
	// is overwritten on update; this matches the published contract.
	update := bson.M{
		"$set": bson.M{
			"room_code":  roomCode,
			"target_iso": targetISO,
			"updated_at": now,
			"created_at": now,
		},
	}

	if _, err := r.store.UpdateOne(ctx, db.CountdownsCollection, bson.M{"room_code": roomCode}, update, true); err != nil {
		return nil, err
	}

	return r.store.FindOne(ctx, db.CountdownsCollection, bson.M{"room_code": roomCode})
}

func (r *countdownRepository) GetByRoom(ctx context.Context, roomCode string) (domain.Document, error) {
	doc, err := r.store.FindOne(ctx, db.CountdownsCollection, bson.M{"room_code": roomCode})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountdownNotFound
		}
		return nil, err
	}

	return doc, nil
}
