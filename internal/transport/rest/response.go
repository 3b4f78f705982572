// Package rest serves the HTTP JSON API on top of the application services.
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string       `json:"error"`
	Outcome string       `json:"outcome,omitempty"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// statusFor maps a service outcome onto its HTTP status.
func statusFor(o domain.Outcome) int {
	switch o {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeNotFound:
		return http.StatusNotFound
	case domain.OutcomeUnauthenticated:
		return http.StatusUnauthorized
	case domain.OutcomeForbidden:
		return http.StatusForbidden
	case domain.OutcomeMismatch:
		return http.StatusConflict
	case domain.OutcomeInvalid:
		return http.StatusBadRequest
	case domain.OutcomeCanceled:
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for a failed service call. Internal errors
// are logged and hidden from the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	outcome := domain.OutcomeOf(err)
	status := statusFor(outcome)

	if errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrConflict) {
		status = http.StatusConflict
	}

	resp := errorResponse{Error: err.Error(), Outcome: outcome.String()}
	switch outcome {
	case domain.OutcomeInternal:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		resp.Error = "internal server error"
	case domain.OutcomeCanceled:
		resp.Error = "request canceled"
	case domain.OutcomeUnauthenticated:
		resp.Error = "unauthorized"
	case domain.OutcomeForbidden:
		resp.Error = "forbidden"
	case domain.OutcomeNotFound:
		resp.Error = "not found"
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(name, "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func queryStatus(r *http.Request) *domain.ProjectStatus {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil
	}
	s := domain.ProjectStatus(raw)
	return &s
}
