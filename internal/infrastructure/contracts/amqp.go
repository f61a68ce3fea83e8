package contracts

import "encoding/json"

// Routing keys for activity events published on the topic exchange.
const (
	EventRoomCreated      = "room.created"
	EventCountdownUpdated = "countdown.updated"
	EventMotdCreated      = "motd.created"
	EventPingCreated      = "ping.created"
	EventTodoCreated      = "todo.created"
	EventTodoCompleted    = "todo.completed"
	EventTodoDeleted      = "todo.deleted"
)

type AmqpMessage struct {
	MessageID string          `json:"message_id"`
	RoomCode  string          `json:"room_code"`
	Data      json.RawMessage `json:"data"`
}
