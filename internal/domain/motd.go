package domain

import (
	"context"
	"time"
)

const (
	MinMotdTextLength = 1
	MaxMotdTextLength = 500
)

// Motd is a short timestamped "message of the day" left in a room. Motds are
// immutable once created.
type Motd struct {
	RoomCode string    `bson:"room_code" json:"room_code"`
	Text     string    `bson:"text" json:"text"`
	Author   *string   `bson:"author" json:"author"`
	At       time.Time `bson:"at" json:"at"`
}

type MotdRepository interface {
	// Create inserts the motd and returns the freshly read document.
	Create(ctx context.Context, motd *Motd) (Document, error)

	// ListByRoom returns up to limit motds for the room, newest first.
	ListByRoom(ctx context.Context, roomCode string, limit int64) ([]Document, error)
}

func NewMotd(roomCode string, text string, author *string) *Motd {
	return &Motd{
		RoomCode: roomCode,
		Text:     text,
		Author:   author,
		At:       time.Now().UTC(),
	}
}
