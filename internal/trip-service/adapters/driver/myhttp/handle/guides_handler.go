package handle

import (
	"encoding/json"
	"net/http"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type GuidesHandler struct {
	guidesService ports.IGuidesService
	log           mylogger.Logger
}

func NewGuidesHandler(gs ports.IGuidesService, log mylogger.Logger) *GuidesHandler {
	return &GuidesHandler{
		guidesService: gs,
		log:           log,
	}
}

func (gh *GuidesHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := gh.guidesService.List(r.Context())
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewGuideResponseList(res))
	}
}

func (gh *GuidesHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := dto.GuideDraft{}
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			JsonErrorWithCode(w, http.StatusBadRequest, err)
			return
		}

		res, err := gh.guidesService.Create(r.Context(), draft, actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.NewGuideResponse(res))
	}
}

func (gh *GuidesHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guideId := r.PathValue("guide_id")

		patch := dto.GuidePatch{}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			JsonErrorWithCode(w, http.StatusBadRequest, err)
			return
		}

		res, err := gh.guidesService.Update(r.Context(), guideId, patch, actorFromRequest(r))
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.NewGuideResponse(res))
	}
}
