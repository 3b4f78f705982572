package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/service/comment"
	"github.com/cocodas/prier-backend/pkg/ctxutil"
)

type commentService interface {
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*comment.CommentResult, error)
	UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*comment.CommentResult, error)
	DeleteComment(ctx context.Context, input comment.DeleteCommentInput) error
	ListProjectComments(ctx context.Context, projectID, viewerID uuid.UUID) ([]comment.CommentWithProfile, error)
	ListUserComments(ctx context.Context, userID uuid.UUID) ([]comment.MyPageComment, error)
	CountSinceLastLogout(ctx context.Context, userID uuid.UUID) (int, error)
}

// CommentHandler serves the comment endpoints nested under a project and
// the per-user comment views.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type commentResponse struct {
	ID        string  `json:"commentId"`
	ProjectID string  `json:"projectId"`
	UserID    string  `json:"userId"`
	Nickname  string  `json:"nickname"`
	AvatarURL string  `json:"profileImageUrl"`
	Tier      string  `json:"tier,omitempty"`
	Content   string  `json:"content"`
	Score     float64 `json:"score"`
	IsMine    bool    `json:"isMine"`
	CreatedAt string  `json:"createdAt"`
}

func fromResult(res *comment.CommentResult) commentResponse {
	return commentResponse{
		ID:        res.Comment.ID.String(),
		ProjectID: res.Comment.ProjectID.String(),
		UserID:    res.Comment.UserID.String(),
		Nickname:  res.Nickname,
		AvatarURL: res.Profile.AvatarURL,
		Tier:      res.Profile.Tier,
		Content:   res.Comment.Content,
		Score:     res.Comment.Score,
		IsMine:    res.IsMine,
		CreatedAt: res.Comment.CreatedAt.Format(time.RFC3339),
	}
}

func fromListed(c comment.CommentWithProfile) commentResponse {
	return commentResponse{
		ID:        c.Comment.ID.String(),
		ProjectID: c.Comment.ProjectID.String(),
		UserID:    c.Comment.UserID.String(),
		Nickname:  c.Nickname,
		AvatarURL: c.AvatarURL,
		Tier:      c.Tier,
		Content:   c.Comment.Content,
		Score:     c.Comment.Score,
		IsMine:    c.IsMine,
		CreatedAt: c.Comment.CreatedAt.Format(time.RFC3339),
	}
}

type myPageCommentResponse struct {
	ID           string  `json:"commentId"`
	ProjectID    string  `json:"projectId"`
	ProjectTitle string  `json:"projectTitle"`
	TeamName     string  `json:"teamName"`
	Content      string  `json:"content"`
	Score        float64 `json:"score"`
	CreatedAt    string  `json:"createdAt"`
}

type notificationsResponse struct {
	Count int `json:"count"`
}

// Create handles POST /api/projects/{projectId}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CreateComment(r.Context(), comment.CreateCommentInput{
		ProjectID: projectID,
		Content:   req.Content,
		Score:     req.Score,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fromResult(res))
}

// Update handles PUT /api/projects/{projectId}/comments/{commentId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, commentID, err := commentPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.UpdateComment(r.Context(), comment.UpdateCommentInput{
		ProjectID: projectID,
		CommentID: commentID,
		Content:   req.Content,
		Score:     req.Score,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fromResult(res))
}

// Delete handles DELETE /api/projects/{projectId}/comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, commentID, err := commentPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), comment.DeleteCommentInput{
		ProjectID: projectID,
		CommentID: commentID,
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/projects/{projectId}/comments. Anonymous viewers get
// the same list with every isMine false.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListProjectComments(r.Context(), projectID, ctxutil.ViewerID(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]commentResponse, len(items))
	for i, c := range items {
		resp[i] = fromListed(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ByUser handles GET /api/users/{userId}/comments.
func (h *CommentHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListUserComments(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]myPageCommentResponse, len(items))
	for i, c := range items {
		resp[i] = myPageCommentResponse{
			ID:           c.Comment.ID.String(),
			ProjectID:    c.ProjectID.String(),
			ProjectTitle: c.ProjectTitle,
			TeamName:     c.TeamName,
			Content:      c.Comment.Content,
			Score:        c.Comment.Score,
			CreatedAt:    c.Comment.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Notifications handles GET /api/users/me/notifications: the number of
// comments left on the caller's projects since their last logout.
func (h *CommentHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	n, err := h.svc.CountSinceLastLogout(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Count: n})
}

func commentPath(r *http.Request) (projectID, commentID uuid.UUID, err error) {
	if projectID, err = pathUUID(r, "projectId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if commentID, err = pathUUID(r, "commentId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return projectID, commentID, nil
}
