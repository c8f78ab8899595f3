package handle

import (
	"net/http"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type NotificationsHandler struct {
	notificationsService ports.INotificationsService
	log                  mylogger.Logger
}

func NewNotificationsHandler(ns ports.INotificationsService, log mylogger.Logger) *NotificationsHandler {
	return &NotificationsHandler{
		notificationsService: ns,
		log:                  log,
	}
}

func (nh *NotificationsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := nh.notificationsService.ListFor(r.Context(), actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewNotificationResponseList(res))
	}
}

func (nh *NotificationsHandler) MarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationId := r.PathValue("notification_id")

		if err := nh.notificationsService.MarkRead(r.Context(), notificationId, actorFromRequest(r)); err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, nil)
	}
}

func (nh *NotificationsHandler) ClearAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := nh.notificationsService.ClearAll(r.Context(), actorFromRequest(r)); err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, nil)
	}
}
