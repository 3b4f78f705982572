package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error)
}

// UserHandler serves public user profiles.
type UserHandler struct {
	profiles profileService
	log      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(profiles profileService, logger *slog.Logger) *UserHandler {
	return &UserHandler{profiles: profiles, log: logger.With("handler", "user")}
}

type profileResponse struct {
	UserID    string  `json:"userId"`
	Nickname  string  `json:"nickname"`
	Intro     string  `json:"intro"`
	Belonging string  `json:"belonging"`
	Tier      string  `json:"tier"`
	AvatarURL string  `json:"profileImageUrl"`
	BlogURL   *string `json:"blogUrl"`
	GithubURL *string `json:"githubUrl"`
	FigmaURL  *string `json:"figmaUrl"`
	NotionURL *string `json:"notionUrl"`
}

// Profile handles GET /api/users/{userId}/profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		UserID:    p.UserID.String(),
		Nickname:  p.Nickname,
		Intro:     p.Intro,
		Belonging: p.Belonging,
		Tier:      p.Tier,
		AvatarURL: p.AvatarURL,
		BlogURL:   p.BlogURL,
		GithubURL: p.GithubURL,
		FigmaURL:  p.FigmaURL,
		NotionURL: p.NotionURL,
	})
}
