package repository

import (
	"context"
	"errors"

	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type roomRepository struct {
	store *db.Store
}

func NewRoomRepository(store *db.Store) domain.RoomRepository {
	return &roomRepository{
		store: store,
	}
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (domain.Document, error) {
	doc, err := r.store.FindOne(ctx, db.RoomsCollection, bson.M{"code": code})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	return doc, nil
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) (domain.Document, error) {
	id, err := r.store.Insert(ctx, db.RoomsCollection, room)
	if err != nil {
		return nil, err
	}

	return r.store.FindOne(ctx, db.RoomsCollection, bson.M{"_id": id})
}
