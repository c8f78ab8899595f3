package dto

import (
	"time"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
)

type NotificationResponseDto struct {
	ID          string `json:"id"`
	RequestId   string `json:"requestId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Read        bool   `json:"read"`
	RecipientId string `json:"recipientId"`
}

func NewNotificationResponse(m model.Notification) NotificationResponseDto {
	return NotificationResponseDto{
		ID:          m.ID,
		RequestId:   m.RequestId,
		Type:        m.Type,
		Title:       m.Title,
		Message:     m.Message,
		Timestamp:   m.CreatedAt.Format(time.RFC3339),
		Read:        m.Read,
		RecipientId: m.RecipientUserId,
	}
}

func NewNotificationResponseList(ms []model.Notification) []NotificationResponseDto {
	res := make([]NotificationResponseDto, 0, len(ms))
	for _, m := range ms {
		res = append(res, NewNotificationResponse(m))
	}
	return res
}
