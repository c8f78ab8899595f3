package ws

import (
	"context"
	"net/http"
	"sync"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"

	websocketdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

// websocketUpgrader turns incoming HTTP requests into persistent websocket
// connections.
var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

type Dispatcher struct {
	ctx     context.Context
	clients ClientList
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(ctx context.Context, log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		ctx:     ctx,
		clients: make(ClientList),
		log:     log,
	}
}

func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("wsHandler")
		userId := r.PathValue("user_id")

		if userId == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("X-UserId") != userId {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		// Clients outlive the upgrade request; net/http cancels r.Context()
		// as soon as this handler returns.
		client := NewClient(d.ctx, conn, d, userId)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()
	}
}

// WriteToUser pushes an event onto every open connection of the user. A
// client with a full egress buffer is skipped rather than blocked on.
func (d *Dispatcher) WriteToUser(userId string, msg websocketdto.Event) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		if client.userId != userId {
			continue
		}
		select {
		case client.egress <- msg:
		default:
			d.log.Action("WriteToUser").Warn("dropping event, slow client", "user-id", userId)
		}
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		close(client.egress)
		delete(d.clients, client)
	}
}
