package repository

import (
	"context"

	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
)

type pingRepository struct {
	store *db.Store
}

func NewPingRepository(store *db.Store) domain.PingRepository {
	return &pingRepository{
		store: store,
	}
}

func (r *pingRepository) Create(ctx context.Context, ping *domain.Ping) (domain.Document, error) {
	id, err := r.store.Insert(ctx, db.PingsCollection, ping)
	if err != nil {
		return nil, err
	}

	return r.store.FindOne(ctx, db.PingsCollection, bson.M{"_id": id})
}

func (r *pingRepository) ListByRoom(ctx context.Context, roomCode string, limit int64) ([]domain.Document, error) {
	sort := bson.D{{Key: "at", Value: -1}}

	docs, err := r.store.FindMany(ctx, db.PingsCollection, bson.M{"room_code": roomCode}, sort, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Document, len(docs))
	for i, doc := range docs {
		out[i] = doc
	}

	return out, nil
}
