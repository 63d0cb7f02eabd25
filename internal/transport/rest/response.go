package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/glosshub/glossary-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors onto HTTP statuses. Eligibility denials get
// a structured body carrying the classification, so clients can display the
// specific reason instead of a blanket failure.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var ee *domain.EligibilityError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fieldErrors(ve),
		})
	case errors.As(err, &ee):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  ee.Reason,
			"status": ee.Status.String(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldErrors(ve *domain.ValidationError) []fieldErrorResponse {
	out := make([]fieldErrorResponse, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	return out
}
