package handle

import (
	"net/http"

	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type DestinationsHandler struct {
	destinationsService ports.IDestinationsService
	log                 mylogger.Logger
}

func NewDestinationsHandler(ds ports.IDestinationsService, log mylogger.Logger) *DestinationsHandler {
	return &DestinationsHandler{
		destinationsService: ds,
		log:                 log,
	}
}

func (dh *DestinationsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := dh.destinationsService.List(r.Context())
		if err != nil {
			JsonError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"destinations": dto.NewDestinationResponseList(res),
		})
	}
}
