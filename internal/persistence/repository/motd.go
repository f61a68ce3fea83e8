package repository

import (
	"context"

	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
)

type motdRepository struct {
	store *db.Store
}

func NewMotdRepository(store *db.Store) domain.MotdRepository {
	return &motdRepository{
		store: store,
	}
}

func (r *motdRepository) Create(ctx context.Context, motd *domain.Motd) (domain.Document, error) {
	id, err := r.store.Insert(ctx, db.MotdsCollection, motd)
	if err != nil {
		return nil, err
	}

	return r.store.FindOne(ctx, db.MotdsCollection, bson.M{"_id": id})
}

func (r *motdRepository) ListByRoom(ctx context.Context, roomCode string, limit int64) ([]domain.Document, error) {
	sort := bson.D{{Key: "at", Value: -1}}

	docs, err := r.store.FindMany(ctx, db.MotdsCollection, bson.M{"room_code": roomCode}, sort, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Document, len(docs))
	for i, doc := range docs {
		out[i] = doc
	}

	return out, nil
}
