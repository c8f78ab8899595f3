package ports

import (
	"context"

	messagebrokerdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/message_broker_dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ITripBroker interface {
	Close() error
	PushAssignment(ctx context.Context, message messagebrokerdto.GuideAssigned) error

	ConsumeAssignments(ctx context.Context, queue, consumer string) (<-chan amqp.Delivery, error)
}
