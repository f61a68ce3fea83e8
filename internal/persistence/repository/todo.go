package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type todoRepository struct {
	store *db.Store
}

func NewTodoRepository(store *db.Store) domain.TodoRepository {
	return &todoRepository{
		store: store,
	}
}

func (r *todoRepository) ListByRoom(ctx context.Context, roomCode string) ([]domain.Document, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}

	docs, err := r.store.FindMany(ctx, db.TodosCollection, bson.M{"room_code": roomCode}, sort, 0)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Document, len(docs))
	for i, doc := range docs {
		out[i] = doc
	}

	return out, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) (domain.Document, error) {
	id, err := r.store.Insert(ctx, db.TodosCollection, todo)
	if err != nil {
		return nil, err
	}

	return r.store.FindOne(ctx, db.TodosCollection, bson.M{"_id": id})
}

func (r *todoRepository) GetByID(ctx context.Context, roomCode string, id string) (domain.Document, error) {
	filter, err := scopedFilter(roomCode, id)
	if err != nil {
		return nil, err
	}

	doc, err := r.store.FindOne(ctx, db.TodosCollection, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}

	return doc, nil
}

func (r *todoRepository) SetDone(ctx context.Context, roomCode string, id string, done bool) (domain.Document, error) {
	filter, err := scopedFilter(roomCode, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"done":       done,
			"updated_at": time.Now().UTC(),
		},
	}

	matched, err := r.store.UpdateOne(ctx, db.TodosCollection, filter, update, false)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrTodoNotFound
	}

	return r.store.FindOne(ctx, db.TodosCollection, filter)
}

func (r *todoRepository) Delete(ctx context.Context, roomCode string, id string) error {
	filter, err := scopedFilter(roomCode, id)
	if err != nil {
		return err
	}

	deleted, err := r.store.DeleteOne(ctx, db.TodosCollection, filter)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

// scopedFilter matches a todo by id AND room code, so a valid id from one
// room can never address a document in another. An unparseable id cannot
// match anything and is reported as not found rather than as a decode error.
func scopedFilter(roomCode string, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	return bson.M{"_id": oid, "room_code": roomCode}, nil
}
