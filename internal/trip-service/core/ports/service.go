package ports

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
)

type IRequestsService interface {
	Submit(ctx context.Context, draft dto.RequestDraft, actor dto.Actor) (model.GuideRequest, error)
	Assign(ctx context.Context, requestID, guideID string, actor dto.Actor) (model.GuideRequest, error)
	AdvanceStatus(ctx context.Context, requestID string, newStatus model.Status, actor dto.Actor) (model.GuideRequest, error)
	EligibleGuides(ctx context.Context, requestID string, actor dto.Actor) ([]model.Guide, error)
	List(ctx context.Context, actor dto.Actor) ([]model.GuideRequest, error)
}

type IGuidesService interface {
	List(ctx context.Context) ([]model.Guide, error)
	Create(ctx context.Context, draft dto.GuideDraft, actor dto.Actor) (model.Guide, error)
	Update(ctx context.Context, guideID string, patch dto.GuidePatch, actor dto.Actor) (model.Guide, error)
}

type IDestinationsService interface {
	List(ctx context.Context) ([]model.Destination, error)
}

type INotificationsService interface {
	ListFor(ctx context.Context, actor dto.Actor) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID string, actor dto.Actor) error
	ClearAll(ctx context.Context, actor dto.Actor) error
}
