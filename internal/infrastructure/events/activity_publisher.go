package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hilthontt/companion/internal/infrastructure/contracts"
	"github.com/hilthontt/companion/internal/infrastructure/messaging"
)

// ActivityPublisher mirrors room activity onto the AMQP topic exchange so
// companion integrations (notification workers, widgets) can react to it. A
// nil publisher is valid and drops everything, which is how the service runs
// when no broker is configured.
type ActivityPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewActivityPublisher(rabbitmq *messaging.RabbitMQ) *ActivityPublisher {
	if rabbitmq == nil {
		return nil
	}

	return &ActivityPublisher{
		rabbitmq: rabbitmq,
	}
}

func (p *ActivityPublisher) publish(ctx context.Context, eventType string, roomCode string, record map[string]any) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, eventType, contracts.AmqpMessage{
		MessageID: uuid.NewString(),
		RoomCode:  roomCode,
		Data:      payload,
	})
}

func (p *ActivityPublisher) PublishRoomCreated(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventRoomCreated, roomCode, record)
}

func (p *ActivityPublisher) PublishCountdownUpdated(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventCountdownUpdated, roomCode, record)
}

func (p *ActivityPublisher) PublishMotdCreated(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventMotdCreated, roomCode, record)
}

func (p *ActivityPublisher) PublishPingCreated(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventPingCreated, roomCode, record)
}

func (p *ActivityPublisher) PublishTodoCreated(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventTodoCreated, roomCode, record)
}

func (p *ActivityPublisher) PublishTodoCompleted(ctx context.Context, roomCode string, record map[string]any) error {
	return p.publish(ctx, contracts.EventTodoCompleted, roomCode, record)
}

func (p *ActivityPublisher) PublishTodoDeleted(ctx context.Context, roomCode string, todoID string) error {
	return p.publish(ctx, contracts.EventTodoDeleted, roomCode, map[string]any{"id": todoID})
}
