package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type authService interface {
	Logout(ctx context.Context) error
}

// AuthHandler serves auth REST endpoints. Token issuance happens outside the
// API; the handler only records logouts.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// Logout handles POST /api/auth/logout. The caller is identified by the Auth
// middleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
