package domain

import (
	"context"
	"errors"
)

var ErrRoomNotFound = errors.New("room not found")

// Room is a shared space identified by a short code, joined by two implied
// partners. Anyone who knows the code has full access to the room's data;
// there is deliberately no membership or auth layer on top.
type Room struct {
	Code  string  `bson:"code" json:"code"`
	Title *string `bson:"title" json:"title"`
}

type RoomRepository interface {
	// GetByCode returns ErrRoomNotFound when no room has the code.
	GetByCode(ctx context.Context, code string) (Document, error)

	// Create inserts the room and returns the freshly read document.
	Create(ctx context.Context, room *Room) (Document, error)
}

func NewRoom(code string, title *string) *Room {
	return &Room{
		Code:  code,
		Title: title,
	}
}
