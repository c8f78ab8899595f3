package ports

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"

	"github.com/jackc/pgx/v5"
)

type IDB interface {
	GetConn() *pgx.Conn
	IsAlive() error
	Close() error
}

type IRequestsRepo interface {
	Create(ctx context.Context, m model.GuideRequest) (model.GuideRequest, error)
	GetByID(ctx context.Context, requestID string) (model.GuideRequest, error)
	ListAll(ctx context.Context) ([]model.GuideRequest, error)
	ListByTourist(ctx context.Context, touristID string) ([]model.GuideRequest, error)
	ListByGuide(ctx context.Context, guideID string) ([]model.GuideRequest, error)

	// AssignGuide performs the pending->assigned transition as an atomic
	// check-and-set and persists the assignment notification in the same
	// transaction. Returns ErrNotFound or ErrInvalidTransition.
	AssignGuide(ctx context.Context, requestID, guideID string, n model.Notification) (model.GuideRequest, error)

	// AdvanceStatus moves requestID from the given status to the next one,
	// conditioned on the prior status value.
	AdvanceStatus(ctx context.Context, requestID string, from, to model.Status) (model.GuideRequest, error)
}

type IGuidesRepo interface {
	List(ctx context.Context) ([]model.Guide, error)
	GetByID(ctx context.Context, guideID string) (model.Guide, error)
	GetByUserID(ctx context.Context, userID string) (model.Guide, error)
	Create(ctx context.Context, m model.Guide) (model.Guide, error)
	Update(ctx context.Context, m model.Guide) (model.Guide, error)
}

type IDestinationsRepo interface {
	List(ctx context.Context) ([]model.Destination, error)
}

type INotificationsRepo interface {
	ListFor(ctx context.Context, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	ClearAll(ctx context.Context, userID string) error
}

// ICatalogCache fronts the destination catalog; a miss or a cache failure
// falls back to the repository.
type ICatalogCache interface {
	GetDestinations(ctx context.Context) ([]model.Destination, bool)
	SetDestinations(ctx context.Context, ds []model.Destination)
}
