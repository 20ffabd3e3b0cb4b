package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"pet-weight-tracker/internal/platform/logger"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Respond es el único lugar que decide status y forma externa de cada
// tipo de la taxonomía. Cualquier error fuera de los tres tipos se
// responde como internal error genérico y el detalle original solo se
// loguea (puede exponer internals).
func Respond(w http.ResponseWriter, log logger.Logger, err error) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		domainErr     *DomainError
	)

	switch {
	case stderrors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: validationErr.Messages,
		})
	case stderrors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case stderrors.As(err, &domainErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: domainErr.Message})
	default:
		if log != nil {
			log.Error("unexpected error", map[string]any{"err": err.Error()})
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
