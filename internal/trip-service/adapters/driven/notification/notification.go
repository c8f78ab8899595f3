package notification

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driven/bm"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	messagebrokerdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/message_broker_dto"
	websocketdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/websocket_dto"

	"github.com/rabbitmq/amqp091-go"
)

const assignmentEvent = "assignment"

// Notification fans persisted assignment events out to the assigned guide's
// open websocket connections. The durable mailbox row is written by the
// engine's transaction; this worker only handles the live push.
type Notification struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	log        mylogger.Logger
	dispatcher ports.INotifyWebsocket
	consumer   ports.ITripBroker
}

func New(
	ctx context.Context,
	wg *sync.WaitGroup,
	log mylogger.Logger,
	dispatcher ports.INotifyWebsocket,
	consumer ports.ITripBroker,
) *Notification {
	return &Notification{
		ctx:        ctx,
		wg:         wg,
		log:        log,
		dispatcher: dispatcher,
		consumer:   consumer,
	}
}

func (n *Notification) Run() error {
	chAssigned, err := n.consumer.ConsumeAssignments(n.ctx, bm.AssignedQueue, "")
	if err != nil {
		return err
	}

	n.wg.Add(1)
	go n.work(n.ctx, chAssigned, n.GuideAssigned)

	return nil
}

func (n *Notification) work(
	ctx context.Context,
	ch <-chan amqp091.Delivery,
	Do func(msg amqp091.Delivery) error,
) {
	log := n.log.Action("work")
	defer func() {
		log.Info("one worker is done")
		n.wg.Done()
	}()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			err := Do(msg)
			if err != nil {
				continue
			}
		case <-ctx.Done():
			return
		}
	}
}

func (n *Notification) GuideAssigned(msg amqp091.Delivery) error {
	log := n.log.Action("GuideAssigned")
	m := messagebrokerdto.GuideAssigned{}
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		log.Error("cannot unmarshal", err)
		msg.Nack(false, false)
		return err
	}

	payload, err := json.Marshal(websocketdto.NotificationDto{
		NotificationID: m.NotificationID,
		RequestID:      m.RequestID,
		Title:          m.Title,
		Message:        m.Message,
		AssignedAt:     m.AssignedAt,
		CorrelationID:  m.CorrelationID,
	})
	if err != nil {
		log.Error("cannot marshal", err)
		msg.Nack(false, false)
		return err
	}

	eventMsg := websocketdto.Event{
		Type: assignmentEvent,
		Data: payload,
	}

	n.dispatcher.WriteToUser(m.GuideUserID, eventMsg)
	log.Info("assignment pushed", "request-id", m.RequestID, "guide-user-id", m.GuideUserID)

	return msg.Ack(false)
}
