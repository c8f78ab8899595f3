package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/myerrors"
)

// jsonResponse writes data as a JSON-encoded HTTP response with the given status code.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data": data,
	})
}

// JsonError maps engine error kinds onto HTTP status codes. Validation
// failures carry the per-field breakdown in the body.
func JsonError(w http.ResponseWriter, err error) {
	if ve, ok := myerrors.AsValidation(err); ok {
		writeError(w, http.StatusBadRequest, ve.Error(), ve.Fields)
		return
	}

	switch {
	case errors.Is(err, myerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, myerrors.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, myerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, myerrors.ErrInternal.Error(), nil)
	}
}

// JsonErrorWithCode writes an explicit status, for transport-level failures
// that never reach the engine.
func JsonErrorWithCode(w http.ResponseWriter, code int, err error) {
	writeError(w, code, err.Error(), nil)
}

func writeError(w http.ResponseWriter, code int, message string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	body := map[string]interface{}{
		"message": message,
		"code":    code,
	}
	if fields != nil {
		body["fields"] = fields
	}
	_ = json.NewEncoder(w).Encode(body)
}

// actorFromRequest rebuilds the authenticated identity the middleware
// stashed in headers.
func actorFromRequest(r *http.Request) dto.Actor {
	return dto.Actor{
		ID:    r.Header.Get("X-UserId"),
		Role:  r.Header.Get("X-Role"),
		Name:  r.Header.Get("X-Name"),
		Email: r.Header.Get("X-Email"),
	}
}
