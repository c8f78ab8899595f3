package services

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type NotificationsService struct {
	mylog             mylogger.Logger
	notificationsRepo ports.INotificationsRepo
}

func NewNotificationsService(log mylogger.Logger, notificationsRepo ports.INotificationsRepo) ports.INotificationsService {
	return &NotificationsService{
		mylog:             log,
		notificationsRepo: notificationsRepo,
	}
}

// ListFor returns the actor's mailbox in insertion order. Any display
// ordering beyond that is the client's business.
func (ns *NotificationsService) ListFor(ctx context.Context, actor dto.Actor) ([]model.Notification, error) {
	return ns.notificationsRepo.ListFor(ctx, actor.ID)
}

// MarkRead is a silent no-op when the notification does not exist or
// belongs to someone else.
func (ns *NotificationsService) MarkRead(ctx context.Context, notificationID string, actor dto.Actor) error {
	return ns.notificationsRepo.MarkRead(ctx, actor.ID, notificationID)
}

// ClearAll wipes the actor's mailbox. Irreversible.
func (ns *NotificationsService) ClearAll(ctx context.Context, actor dto.Actor) error {
	log := ns.mylog.Action("ClearAll")
	if err := ns.notificationsRepo.ClearAll(ctx, actor.ID); err != nil {
		log.Error("cannot clear notifications", err, "user-id", actor.ID)
		return err
	}
	return nil
}
