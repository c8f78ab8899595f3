package services

import (
	"context"
	"errors"
	"testing"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
)

func validGuideDraft() dto.GuideDraft {
	return dto.GuideDraft{
		UserId:      "u-guide",
		Name:        "Pemba Sherpa",
		Email:       "pemba@example.com",
		Location:    "Namche Bazaar",
		Languages:   []string{"English", "Nepali"},
		Specialties: []string{"trekking"},
	}
}

func TestCreateGuideDefaultsToAvailable(t *testing.T) {
	repo := newFakeGuidesRepo()
	svc := NewGuidesService(nopLogger{}, repo)

	created, err := svc.Create(context.Background(), validGuideDraft(), admin())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated guide id")
	}
	if !created.Available {
		t.Error("new guides must start available")
	}
}

func TestCreateGuideAdminOnly(t *testing.T) {
	svc := NewGuidesService(nopLogger{}, newFakeGuidesRepo())

	for _, actor := range []dto.Actor{tourist(), {ID: "u-guide", Role: dto.RoleGuide}} {
		if _, err := svc.Create(context.Background(), validGuideDraft(), actor); !errors.Is(err, myerrors.ErrForbidden) {
			t.Errorf("Create as %s: err = %v, want ErrForbidden", actor.Role, err)
		}
	}
}

func TestCreateGuideValidation(t *testing.T) {
	svc := NewGuidesService(nopLogger{}, newFakeGuidesRepo())

	draft := validGuideDraft()
	draft.Email = "not-an-email"
	draft.Languages = nil

	_, err := svc.Create(context.Background(), draft, admin())
	ve, ok := myerrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, found := ve.Fields["Email"]; !found {
		t.Errorf("expected a complaint about Email, got %v", ve.Fields)
	}
	if _, found := ve.Fields["Languages"]; !found {
		t.Errorf("expected a complaint about Languages, got %v", ve.Fields)
	}
}

func TestUpdateGuideAvailability(t *testing.T) {
	repo := newFakeGuidesRepo(model.Guide{ID: "g-1", UserId: "u-guide", Available: true, Phone: "111"})
	svc := NewGuidesService(nopLogger{}, repo)

	off := false
	updated, err := svc.Update(context.Background(), "g-1", dto.GuidePatch{Available: &off}, admin())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Available {
		t.Error("available flag not flipped")
	}
	if updated.Phone != "111" {
		t.Errorf("untouched field changed: phone = %q", updated.Phone)
	}

	if _, err := svc.Update(context.Background(), "missing", dto.GuidePatch{Available: &off}, admin()); !errors.Is(err, myerrors.ErrNotFound) {
		t.Errorf("unknown guide: err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Update(context.Background(), "g-1", dto.GuidePatch{Available: &off}, tourist()); !errors.Is(err, myerrors.ErrForbidden) {
		t.Errorf("tourist: err = %v, want ErrForbidden", err)
	}
}
