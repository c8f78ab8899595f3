package websocketdto

import "encoding/json"

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NotificationDto is pushed to the assigned guide's open sockets.
type NotificationDto struct {
	NotificationID string `json:"notification_id"`
	RequestID      string `json:"request_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	AssignedAt     string `json:"assigned_at"`
	CorrelationID  string `json:"correlation_id"`
}
