package domain

import (
	"context"
	"time"
)

const MaxPingNoteLength = 140

// Ping is a lightweight presence notification, optionally annotated with a
// short note. Pings are immutable once created.
type Ping struct {
	RoomCode string    `bson:"room_code" json:"room_code"`
	Note     *string   `bson:"note" json:"note"`
	Author   *string   `bson:"author" json:"author"`
	At       time.Time `bson:"at" json:"at"`
}

type PingRepository interface {
	// Create inserts the ping and returns the freshly read document.
	Create(ctx context.Context, ping *Ping) (Document, error)

	// ListByRoom returns up to limit pings for the room, newest first.
	ListByRoom(ctx context.Context, roomCode string, limit int64) ([]Document, error)
}

func NewPing(roomCode string, note *string, author *string) *Ping {
	return &Ping{
		RoomCode: roomCode,
		Note:     note,
		Author:   author,
		At:       time.Now().UTC(),
	}
}
