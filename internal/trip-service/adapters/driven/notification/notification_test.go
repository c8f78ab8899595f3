package notification

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"

	messagebrokerdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/message_broker_dto"
	websocketdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/websocket_dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)            {}
func (nopLogger) Info(msg string, args ...any)             {}
func (nopLogger) Warn(msg string, args ...any)             {}
func (nopLogger) Error(msg string, err error, args ...any) {}
func (nopLogger) Action(action string) mylogger.Logger     { return nopLogger{} }
func (nopLogger) With(args ...any) mylogger.Logger         { return nopLogger{} }
func (nopLogger) WithGroup(name string) mylogger.Logger    { return nopLogger{} }

type fakeBroker struct {
	deliveries chan amqp.Delivery
}

func (f *fakeBroker) Close() error { return nil }

func (f *fakeBroker) PushAssignment(ctx context.Context, message messagebrokerdto.GuideAssigned) error {
	return nil
}

func (f *fakeBroker) ConsumeAssignments(ctx context.Context, queue, consumer string) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	pushed []pushedEvent
}

type pushedEvent struct {
	userId string
	event  websocketdto.Event
}

func (f *fakeDispatcher) WriteToUser(userID string, msg websocketdto.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, pushedEvent{userId: userID, event: msg})
}

func (f *fakeDispatcher) waitForPush(t *testing.T) pushedEvent {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		f.mu.Lock()
		if len(f.pushed) > 0 {
			ev := f.pushed[0]
			f.mu.Unlock()
			return ev
		}
		f.mu.Unlock()

		if time.Now().After(deadline) {
			t.Fatal("no event pushed to dispatcher")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

type fakeAcknowledger struct {
	mu     sync.Mutex
	acked  bool
	nacked bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nacked = true
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error { return nil }

func TestWorkerPushesAssignmentToGuide(t *testing.T) {
	broker := &fakeBroker{deliveries: make(chan amqp.Delivery, 1)}
	dispatcher := &fakeDispatcher{}
	wg := &sync.WaitGroup{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := New(ctx, wg, nopLogger{}, dispatcher, broker)
	if err := worker.Run(); err != nil {
		t.Fatalf("run worker: %v", err)
	}

	body, err := json.Marshal(messagebrokerdto.GuideAssigned{
		RequestID:      "req-1",
		GuideID:        "g-1",
		GuideUserID:    "guide-user-1",
		NotificationID: "n-1",
		Title:          "New Tour Assignment",
		Message:        "You have been assigned to Asha's trekking tour.",
	})
	if err != nil {
		t.Fatalf("marshal delivery: %v", err)
	}

	ack := &fakeAcknowledger{}
	broker.deliveries <- amqp.Delivery{Acknowledger: ack, Body: body}

	pushed := dispatcher.waitForPush(t)
	if pushed.userId != "guide-user-1" {
		t.Errorf("pushed to %q, want guide-user-1", pushed.userId)
	}
	if pushed.event.Type != "assignment" {
		t.Errorf("event type = %q, want assignment", pushed.event.Type)
	}

	notification := websocketdto.NotificationDto{}
	if err := json.Unmarshal(pushed.event.Data, &notification); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if notification.NotificationID != "n-1" || notification.RequestID != "req-1" {
		t.Errorf("payload = %+v, want notification n-1 for req-1", notification)
	}

	ack.mu.Lock()
	acked := ack.acked
	ack.mu.Unlock()
	if !acked {
		t.Error("delivery was not acked")
	}

	close(broker.deliveries)
	wg.Wait()
}

func TestWorkerNacksMalformedDelivery(t *testing.T) {
	broker := &fakeBroker{deliveries: make(chan amqp.Delivery, 1)}
	dispatcher := &fakeDispatcher{}
	wg := &sync.WaitGroup{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := New(ctx, wg, nopLogger{}, dispatcher, broker)
	if err := worker.Run(); err != nil {
		t.Fatalf("run worker: %v", err)
	}

	ack := &fakeAcknowledger{}
	broker.deliveries <- amqp.Delivery{Acknowledger: ack, Body: []byte("not json")}

	close(broker.deliveries)
	wg.Wait()

	ack.mu.Lock()
	defer ack.mu.Unlock()
	if !ack.nacked {
		t.Error("malformed delivery was not nacked")
	}
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	if len(dispatcher.pushed) != 0 {
		t.Errorf("pushed %d events for a malformed delivery, want 0", len(dispatcher.pushed))
	}
}
