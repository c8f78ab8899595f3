package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)            {}
func (nopLogger) Info(msg string, args ...any)             {}
func (nopLogger) Warn(msg string, args ...any)             {}
func (nopLogger) Error(msg string, err error, args ...any) {}
func (nopLogger) Action(action string) mylogger.Logger     { return nopLogger{} }
func (nopLogger) With(args ...any) mylogger.Logger         { return nopLogger{} }
func (nopLogger) WithGroup(name string) mylogger.Logger    { return nopLogger{} }

// stubRequestsService returns canned results so the handler's status code
// mapping can be exercised without a database.
type stubRequestsService struct {
	result model.GuideRequest
	err    error
}

func (s *stubRequestsService) Submit(ctx context.Context, draft dto.RequestDraft, actor dto.Actor) (model.GuideRequest, error) {
	return s.result, s.err
}

func (s *stubRequestsService) Assign(ctx context.Context, requestID, guideID string, actor dto.Actor) (model.GuideRequest, error) {
	return s.result, s.err
}

func (s *stubRequestsService) AdvanceStatus(ctx context.Context, requestID string, newStatus model.Status, actor dto.Actor) (model.GuideRequest, error) {
	return s.result, s.err
}

func (s *stubRequestsService) EligibleGuides(ctx context.Context, requestID string, actor dto.Actor) ([]model.Guide, error) {
	return nil, s.err
}

func (s *stubRequestsService) List(ctx context.Context, actor dto.Actor) ([]model.GuideRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.GuideRequest{s.result}, nil
}

func newMux(svc *stubRequestsService) *http.ServeMux {
	h := NewRequestsHandler(svc, nopLogger{})
	mux := http.NewServeMux()
	mux.Handle("POST /api/requests", h.Submit())
	mux.Handle("GET /api/requests", h.List())
	mux.Handle("PUT /api/requests/{request_id}/assign", h.Assign())
	mux.Handle("PUT /api/requests/{request_id}", h.AdvanceStatus())
	mux.Handle("GET /api/requests/{request_id}/eligible", h.EligibleGuides())
	return mux
}

func TestErrorKindToStatusCode(t *testing.T) {
	ve := myerrors.NewValidationError()
	ve.Add("StartDate", "must be today or later")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ve, http.StatusBadRequest},
		{"not found", myerrors.ErrNotFound, http.StatusNotFound},
		{"invalid transition", myerrors.ErrInvalidTransition, http.StatusConflict},
		{"forbidden", myerrors.ErrForbidden, http.StatusForbidden},
		{"internal", myerrors.ErrInternal, http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mux := newMux(&stubRequestsService{err: c.err})

			req := httptest.NewRequest(http.MethodPut, "/api/requests/req-1/assign", strings.NewReader(`{"guideId":"g-1"}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != c.want {
				t.Errorf("status = %d, want %d", rec.Code, c.want)
			}
		})
	}
}

func TestValidationErrorBodyCarriesFields(t *testing.T) {
	ve := myerrors.NewValidationError()
	ve.Add("SelectedDestinations", "must not be empty")
	mux := newMux(&stubRequestsService{err: ve})

	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Fields["SelectedDestinations"] != "must not be empty" {
		t.Errorf("fields = %v", body.Fields)
	}
}

func TestSubmitReturns201(t *testing.T) {
	stub := &stubRequestsService{result: model.GuideRequest{ID: "req-1", Status: model.StatusPending}}
	mux := newMux(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(`{"tourType":"trekking"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var body struct {
		Data dto.RequestResponseDto `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.ID != "req-1" || body.Data.Status != "pending" {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	mux := newMux(&stubRequestsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
