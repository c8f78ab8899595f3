package services

import (
	"context"
	"errors"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GuidesService struct {
	mylog      mylogger.Logger
	guidesRepo ports.IGuidesRepo
	validate   *validator.Validate
}

func NewGuidesService(log mylogger.Logger, guidesRepo ports.IGuidesRepo) ports.IGuidesService {
	return &GuidesService{
		mylog:      log,
		guidesRepo: guidesRepo,
		validate:   validator.New(),
	}
}

func (gs *GuidesService) List(ctx context.Context) ([]model.Guide, error) {
	return gs.guidesRepo.List(ctx)
}

// Create adds a guide profile to the registry. The registry is
// admin-managed, guides never self-register here.
func (gs *GuidesService) Create(ctx context.Context, draft dto.GuideDraft, actor dto.Actor) (model.Guide, error) {
	log := gs.mylog.Action("CreateGuide")

	if actor.Role != dto.RoleAdmin {
		return model.Guide{}, myerrors.ErrForbidden
	}

	if err := gs.validate.Struct(draft); err != nil {
		ve := myerrors.NewValidationError()
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				ve.Add(fe.Field(), "is invalid")
			}
			return model.Guide{}, ve
		}
		return model.Guide{}, myerrors.ErrInternal
	}

	m := model.Guide{
		ID:          uuid.NewString(),
		UserId:      draft.UserId,
		Name:        draft.Name,
		Email:       draft.Email,
		Phone:       draft.Phone,
		Location:    draft.Location,
		Languages:   draft.Languages,
		Specialties: draft.Specialties,
		Available:   true,
		Bio:         draft.Bio,
	}

	created, err := gs.guidesRepo.Create(ctx, m)
	if err != nil {
		log.Error("cannot create guide", err, "admin-id", actor.ID)
		return model.Guide{}, myerrors.ErrInternal
	}

	log.Info("guide registered", "guide-id", created.ID, "admin-id", actor.ID)
	return created, nil
}

// Update applies a partial registry patch. The available flag is flipped
// only through here, assignments never touch it.
func (gs *GuidesService) Update(ctx context.Context, guideID string, patch dto.GuidePatch, actor dto.Actor) (model.Guide, error) {
	log := gs.mylog.Action("UpdateGuide")

	if actor.Role != dto.RoleAdmin {
		return model.Guide{}, myerrors.ErrForbidden
	}

	m, err := gs.guidesRepo.GetByID(ctx, guideID)
	if err != nil {
		return model.Guide{}, err
	}

	if patch.Available != nil {
		m.Available = *patch.Available
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Location != nil {
		m.Location = *patch.Location
	}
	if patch.Languages != nil {
		m.Languages = *patch.Languages
	}
	if patch.Specialties != nil {
		m.Specialties = *patch.Specialties
	}
	if patch.Bio != nil {
		m.Bio = *patch.Bio
	}

	updated, err := gs.guidesRepo.Update(ctx, m)
	if err != nil {
		log.Error("cannot update guide", err, "guide-id", guideID)
		return model.Guide{}, myerrors.ErrInternal
	}

	log.Info("guide updated", "guide-id", guideID, "available", updated.Available)
	return updated, nil
}
