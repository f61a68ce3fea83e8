package domain

import (
	"context"
	"errors"
	"time"
)

var ErrCountdownNotFound = errors.New("countdown not found")

// Countdown is the single shared target date of a room. There is at most one
// document per room code, enforced by upserting on room_code rather than by a
// uniqueness constraint.
type Countdown struct {
	RoomCode  string    `bson:"room_code" json:"room_code"`
	TargetISO string    `bson:"target_iso" json:"target_iso"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CountdownRepository interface {
	// Set upserts the room's countdown and returns the resulting document.
	Set(ctx context.Context, roomCode string, targetISO string) (Document, error)

	// GetByRoom returns ErrCountdownNotFound when the room has no countdown.
	GetByRoom(ctx context.Context, roomCode string) (Document, error)
}
