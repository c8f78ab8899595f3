package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	messagebrokerdto "github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/message_broker_dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const startDateLayout = "2006-01-02"

type RequestsService struct {
	mylog        mylogger.Logger
	requestsRepo ports.IRequestsRepo
	guidesRepo   ports.IGuidesRepo
	broker       ports.ITripBroker
	validate     *validator.Validate
	now          func() time.Time
}

func NewRequestsService(
	log mylogger.Logger,
	requestsRepo ports.IRequestsRepo,
	guidesRepo ports.IGuidesRepo,
	broker ports.ITripBroker,
) ports.IRequestsService {
	return &RequestsService{
		mylog:        log,
		requestsRepo: requestsRepo,
		guidesRepo:   guidesRepo,
		broker:       broker,
		validate:     validator.New(),
		now:          time.Now,
	}
}

// Submit creates a pending guide request from a validated draft. Tourist
// identity is snapshotted from the actor; no notification is emitted here.
func (rs *RequestsService) Submit(ctx context.Context, draft dto.RequestDraft, actor dto.Actor) (model.GuideRequest, error) {
	log := rs.mylog.Action("Submit")

	startDate, err := rs.validateDraft(draft)
	if err != nil {
		log.Warn("rejected request draft", "tourist-id", actor.ID, "reason", err.Error())
		return model.GuideRequest{}, err
	}

	m := model.GuideRequest{
		ID:                   uuid.NewString(),
		TouristID:            actor.ID,
		TouristName:          actor.Name,
		TouristEmail:         actor.Email,
		SelectedDestinations: draft.SelectedDestinations,
		TourType:             draft.TourType,
		PreferredLanguage:    draft.PreferredLanguage,
		SpecialInterests:     draft.SpecialInterests,
		Duration:             draft.Duration,
		GroupSize:            draft.GroupSize,
		Budget:               draft.Budget,
		FitnessLevel:         draft.FitnessLevel,
		StartDate:            startDate,
		EmergencyContact:     draft.EmergencyContact,
		Status:               model.StatusPending,
		SubmittedAt:          rs.now().UTC(),
	}

	created, err := rs.requestsRepo.Create(ctx, m)
	if err != nil {
		log.Error("cannot create guide request", err, "tourist-id", actor.ID)
		return model.GuideRequest{}, myerrors.ErrInternal
	}

	log.Info("guide request submitted", "request-id", created.ID, "tourist-id", actor.ID, "tour-type", created.TourType)
	return created, nil
}

func (rs *RequestsService) validateDraft(draft dto.RequestDraft) (time.Time, error) {
	ve := myerrors.NewValidationError()

	if err := rs.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.Tag() {
				case "required":
					ve.Add(fe.Field(), "is required")
				case "min":
					ve.Add(fe.Field(), "must not be empty")
				default:
					ve.Add(fe.Field(), "is invalid")
				}
			}
		} else {
			return time.Time{}, myerrors.ErrInternal
		}
	}

	if draft.TourType != "" && !model.AllowedTourTypes[draft.TourType] {
		ve.Add("TourType", "unknown tour type")
	}

	var startDate time.Time
	if draft.StartDate != "" {
		parsed, err := time.Parse(startDateLayout, draft.StartDate)
		if err != nil {
			ve.Add("StartDate", "must be a date in YYYY-MM-DD form")
		} else {
			today := rs.now().UTC().Truncate(24 * time.Hour)
			if parsed.Before(today) {
				ve.Add("StartDate", "must be today or later")
			}
			startDate = parsed
		}
	}

	if !ve.Empty() {
		return time.Time{}, ve
	}
	return startDate, nil
}

// Assign moves a pending request to assigned. Only admins may call it; the
// guide does not have to be in the eligible set, that shortlist is advisory.
// The status flip and the assignment notification commit in one transaction,
// the realtime event goes out best-effort afterwards.
func (rs *RequestsService) Assign(ctx context.Context, requestID, guideID string, actor dto.Actor) (model.GuideRequest, error) {
	log := rs.mylog.Action("Assign")

	if actor.Role != dto.RoleAdmin {
		return model.GuideRequest{}, myerrors.ErrForbidden
	}

	req, err := rs.requestsRepo.GetByID(ctx, requestID)
	if err != nil {
		return model.GuideRequest{}, err
	}

	guide, err := rs.guidesRepo.GetByID(ctx, guideID)
	if err != nil {
		return model.GuideRequest{}, err
	}

	n := model.Notification{
		ID:              uuid.NewString(),
		RecipientUserId: guide.UserId,
		RequestId:       req.ID,
		Type:            model.NotificationTypeAssignment,
		Title:           "New Tour Assignment",
		Message:         fmt.Sprintf("You have been assigned to %s's %s tour.", req.TouristName, req.TourType),
		CreatedAt:       rs.now().UTC(),
	}

	updated, err := rs.requestsRepo.AssignGuide(ctx, requestID, guideID, n)
	if err != nil {
		if errors.Is(err, myerrors.ErrInvalidTransition) {
			log.Warn("assignment lost the race or request already assigned", "request-id", requestID)
		}
		return model.GuideRequest{}, err
	}

	log.Info("guide assigned", "request-id", requestID, "guide-id", guideID, "admin-id", actor.ID)

	msg := messagebrokerdto.GuideAssigned{
		RequestID:      updated.ID,
		GuideID:        guide.ID,
		GuideUserID:    guide.UserId,
		NotificationID: n.ID,
		TouristName:    updated.TouristName,
		TourType:       updated.TourType,
		Title:          n.Title,
		Message:        n.Message,
		AssignedAt:     updated.AssignedAt.Format(time.RFC3339),
		CorrelationID:  uuid.NewString(),
	}
	if err := rs.broker.PushAssignment(ctx, msg); err != nil {
		// The notification row is already durable; only the live push is lost.
		log.Error("cannot publish assignment event", err, "request-id", requestID)
	}

	return updated, nil
}

// AdvanceStatus performs assigned->in-progress and in-progress->completed.
// Only the assigned guide may advance, and only to the single legal
// successor of the current status.
func (rs *RequestsService) AdvanceStatus(ctx context.Context, requestID string, newStatus model.Status, actor dto.Actor) (model.GuideRequest, error) {
	log := rs.mylog.Action("AdvanceStatus")

	if !newStatus.Valid() || newStatus == model.StatusPending {
		return model.GuideRequest{}, myerrors.ErrInvalidTransition
	}

	if actor.Role != dto.RoleGuide {
		return model.GuideRequest{}, myerrors.ErrForbidden
	}

	guide, err := rs.guidesRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, myerrors.ErrNotFound) {
			return model.GuideRequest{}, myerrors.ErrForbidden
		}
		return model.GuideRequest{}, err
	}

	req, err := rs.requestsRepo.GetByID(ctx, requestID)
	if err != nil {
		return model.GuideRequest{}, err
	}

	if req.AssignedGuide != guide.ID {
		return model.GuideRequest{}, myerrors.ErrForbidden
	}

	if !model.CanTransition(req.Status, newStatus) {
		return model.GuideRequest{}, myerrors.ErrInvalidTransition
	}

	updated, err := rs.requestsRepo.AdvanceStatus(ctx, requestID, req.Status, newStatus)
	if err != nil {
		return model.GuideRequest{}, err
	}

	log.Info("request status advanced", "request-id", requestID, "from", req.Status, "to", newStatus, "guide-id", guide.ID)
	return updated, nil
}

// EligibleGuides computes the unordered candidate shortlist for a pending
// request. Available is the sole capacity gate; existing assignments never
// exclude a guide.
func (rs *RequestsService) EligibleGuides(ctx context.Context, requestID string, actor dto.Actor) ([]model.Guide, error) {
	if actor.Role != dto.RoleAdmin {
		return nil, myerrors.ErrForbidden
	}

	req, err := rs.requestsRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	guides, err := rs.guidesRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return Eligible(req, guides), nil
}

// List returns requests visible to the actor: admins see everything, guides
// their assignments, tourists their own submissions.
func (rs *RequestsService) List(ctx context.Context, actor dto.Actor) ([]model.GuideRequest, error) {
	switch actor.Role {
	case dto.RoleAdmin:
		return rs.requestsRepo.ListAll(ctx)
	case dto.RoleGuide:
		guide, err := rs.guidesRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, myerrors.ErrNotFound) {
				return []model.GuideRequest{}, nil
			}
			return nil, err
		}
		return rs.requestsRepo.ListByGuide(ctx, guide.ID)
	default:
		return rs.requestsRepo.ListByTourist(ctx, actor.ID)
	}
}
