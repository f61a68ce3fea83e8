package domain

import (
	"context"
	"errors"
	"time"
)

const (
	MinTodoTextLength = 1
	MaxTodoTextLength = 200
)

var ErrTodoNotFound = errors.New("todo not found")

// Todo is a shared to-do item. It is the only entity that can be mutated
// after creation, and mutation only ever touches done and updated_at. The
// store-assigned id is the sole handle for update and delete, always scoped
// to the room code so ids cannot be replayed across rooms.
type Todo struct {
	RoomCode  string     `bson:"room_code" json:"room_code"`
	Text      string     `bson:"text" json:"text"`
	Done      bool       `bson:"done" json:"done"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type TodoRepository interface {
	// ListByRoom returns every todo for the room, newest first.
	ListByRoom(ctx context.Context, roomCode string) ([]Document, error)

	// Create inserts the todo and returns the freshly read document.
	Create(ctx context.Context, todo *Todo) (Document, error)

	// GetByID returns ErrTodoNotFound unless a todo matches both id and room.
	GetByID(ctx context.Context, roomCode string, id string) (Document, error)

	// SetDone flips the done flag, stamps updated_at and returns the updated
	// document. ErrTodoNotFound unless a todo matches both id and room.
	SetDone(ctx context.Context, roomCode string, id string, done bool) (Document, error)

	// Delete returns ErrTodoNotFound unless a todo matches both id and room.
	Delete(ctx context.Context, roomCode string, id string) error
}

func NewTodo(roomCode string, text string) *Todo {
	return &Todo{
		RoomCode:  roomCode,
		Text:      text,
		Done:      false,
		CreatedAt: time.Now().UTC(),
	}
}
