package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"

	websocketdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)            {}
func (nopLogger) Info(msg string, args ...any)             {}
func (nopLogger) Warn(msg string, args ...any)             {}
func (nopLogger) Error(msg string, err error, args ...any) {}
func (nopLogger) Action(action string) mylogger.Logger     { return nopLogger{} }
func (nopLogger) With(args ...any) mylogger.Logger         { return nopLogger{} }
func (nopLogger) WithGroup(name string) mylogger.Logger    { return nopLogger{} }

func newTestDispatcher(t *testing.T) (*Dispatcher, *httptest.Server) {
	t.Helper()

	d := NewDispatcher(context.Background(), nopLogger{})
	mux := http.NewServeMux()
	mux.Handle("GET /ws/users/{user_id}", d.WsHandler())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return d, srv
}

func wsURL(srv *httptest.Server, userId string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/users/" + userId
}

func dial(t *testing.T, srv *httptest.Server, userId string) *websocket.Conn {
	t.Helper()

	header := http.Header{}
	header.Set("X-UserId", userId)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, userId), header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func (d *Dispatcher) clientCount() int {
	d.RLock()
	defer d.RUnlock()
	return len(d.clients)
}

func waitForClients(t *testing.T, d *Dispatcher, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for d.clientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", d.clientCount(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWriteToUserDeliversAfterUpgradeHandlerReturns(t *testing.T) {
	d, srv := newTestDispatcher(t)

	conn := dial(t, srv, "guide-user-1")
	waitForClients(t, d, 1)

	// The upgrade handler has long since returned by now; the connection
	// must still be live.
	time.Sleep(100 * time.Millisecond)

	payload, err := json.Marshal(websocketdto.NotificationDto{
		NotificationID: "n-1",
		RequestID:      "req-1",
		Title:          "New Tour Assignment",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	d.WriteToUser("guide-user-1", websocketdto.Event{Type: "assignment", Data: payload})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read pushed event: %v", err)
	}

	event := websocketdto.Event{}
	if err := json.Unmarshal(raw, &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.Type != "assignment" {
		t.Errorf("event type = %q, want assignment", event.Type)
	}

	notification := websocketdto.NotificationDto{}
	if err := json.Unmarshal(event.Data, &notification); err != nil {
		t.Fatalf("unmarshal notification: %v", err)
	}
	if notification.RequestID != "req-1" {
		t.Errorf("request id = %q, want req-1", notification.RequestID)
	}
}

func TestWriteToUserTargetsOnlyTheRecipient(t *testing.T) {
	d, srv := newTestDispatcher(t)

	conn := dial(t, srv, "guide-user-1")
	other := dial(t, srv, "guide-user-2")
	waitForClients(t, d, 2)

	d.WriteToUser("guide-user-1", websocketdto.Event{Type: "assignment", Data: json.RawMessage(`{}`)})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("recipient read: %v", err)
	}

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Error("event delivered to a different user")
	}
}

func TestWsHandlerRejectsMismatchedIdentity(t *testing.T) {
	_, srv := newTestDispatcher(t)

	header := http.Header{}
	header.Set("X-UserId", "intruder")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "guide-user-1"), header)
	if err == nil {
		t.Fatal("handshake succeeded for a mismatched identity")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response = %+v, want 403", resp)
	}
}

func TestClientRemovedOnDisconnect(t *testing.T) {
	d, srv := newTestDispatcher(t)

	conn := dial(t, srv, "guide-user-1")
	waitForClients(t, d, 1)

	conn.Close()
	waitForClients(t, d, 0)
}
