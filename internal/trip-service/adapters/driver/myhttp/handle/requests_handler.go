package handle

import (
	"encoding/json"
	"net/http"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type RequestsHandler struct {
	requestsService ports.IRequestsService
	log             mylogger.Logger
}

func NewRequestsHandler(rs ports.IRequestsService, log mylogger.Logger) *RequestsHandler {
	return &RequestsHandler{
		requestsService: rs,
		log:             log,
	}
}

func (rh *RequestsHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := dto.RequestDraft{}

		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			JsonErrorWithCode(w, http.StatusBadRequest, err)
			return
		}

		res, err := rh.requestsService.Submit(r.Context(), draft, actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.NewRequestResponse(res))
	}
}

func (rh *RequestsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := rh.requestsService.List(r.Context(), actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewRequestResponseList(res))
	}
}

func (rh *RequestsHandler) Assign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := r.PathValue("request_id")

		req := dto.AssignRequestDto{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonErrorWithCode(w, http.StatusBadRequest, err)
			return
		}

		res, err := rh.requestsService.Assign(r.Context(), requestId, req.GuideId, actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewRequestResponse(res))
	}
}

func (rh *RequestsHandler) AdvanceStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := r.PathValue("request_id")

		req := dto.StatusUpdateDto{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonErrorWithCode(w, http.StatusBadRequest, err)
			return
		}

		res, err := rh.requestsService.AdvanceStatus(r.Context(), requestId, model.Status(req.Status), actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewRequestResponse(res))
	}
}

func (rh *RequestsHandler) EligibleGuides() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := r.PathValue("request_id")

		res, err := rh.requestsService.EligibleGuides(r.Context(), requestId, actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewGuideResponseList(res))
	}
}
