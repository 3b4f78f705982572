package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
	"github.com/cocodas/prier-backend/internal/service/project"
)

const dateLayout = time.DateOnly

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ExtendFeedback(ctx context.Context, projectID uuid.UUID, weeks int) (*domain.Project, error)
	SearchProjects(ctx context.Context, input project.SearchInput) (*domain.Page[domain.Project], error)
	ListMyProjects(ctx context.Context, input project.ListInput) (*domain.Page[domain.Project], error)
	ListUserProjects(ctx context.Context, userID uuid.UUID, input project.ListInput) (*domain.Page[domain.Project], error)
	GetRecentProject(ctx context.Context, userID uuid.UUID) (*domain.RecentProject, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type projectRequest struct {
	Title           string `json:"title"`
	Introduce       string `json:"introduce"`
	Goal            string `json:"goal"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	TeamName        string `json:"teamName"`
	TeamDescription string `json:"teamDescription"`
	TeamMate        string `json:"teamMate"`
	Link            string `json:"link"`
}

// fields converts the request, reporting malformed dates as validation
// errors. Empty dates are left zero so the service reports them as required.
func (req projectRequest) fields() (project.ProjectFields, error) {
	f := project.ProjectFields{
		Title:           req.Title,
		Introduce:       req.Introduce,
		Goal:            req.Goal,
		TeamName:        req.TeamName,
		TeamDescription: req.TeamDescription,
		TeamMate:        req.TeamMate,
		Link:            req.Link,
	}

	var errs []domain.FieldError
	for _, d := range []struct {
		field string
		raw   string
		dst   *time.Time
	}{
		{"start_date", req.StartDate, &f.StartDate},
		{"end_date", req.EndDate, &f.EndDate},
	} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, d.raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: d.field, Message: "must be YYYY-MM-DD"})
			continue
		}
		*d.dst = t
	}
	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}
	return f, nil
}

type projectResponse struct {
	ID              string  `json:"projectId"`
	OwnerID         string  `json:"userId"`
	Title           string  `json:"title"`
	Introduce       string  `json:"introduce"`
	Goal            string  `json:"goal"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Status          string  `json:"status"`
	TeamName        string  `json:"teamName"`
	TeamDescription string  `json:"teamDescription"`
	TeamMate        string  `json:"teamMate"`
	Link            string  `json:"link"`
	Score           float64 `json:"score"`
	CommentCount    int     `json:"commentCount"`
	CreatedAt       string  `json:"createdAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:              p.ID.String(),
		OwnerID:         p.UserID.String(),
		Title:           p.Title,
		Introduce:       p.Introduce,
		Goal:            p.Goal,
		StartDate:       p.StartDate.Format(dateLayout),
		EndDate:         p.EndDate.Format(dateLayout),
		Status:          p.Status.String(),
		TeamName:        p.TeamName,
		TeamDescription: p.TeamDescription,
		TeamMate:        p.TeamMate,
		Link:            p.Link,
		Score:           p.Score,
		CommentCount:    p.CommentCount,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

type projectPageResponse struct {
	Content    []projectResponse `json:"content"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	Total      int               `json:"totalElements"`
	TotalPages int               `json:"totalPages"`
	HasNext    bool              `json:"hasNext"`
}

func toProjectPage(page *domain.Page[domain.Project]) projectPageResponse {
	content := make([]projectResponse, len(page.Items))
	for i := range page.Items {
		content[i] = toProjectResponse(&page.Items[i])
	}
	return projectPageResponse{
		Content:    content,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
		HasNext:    page.HasNext(),
	}
}

type recentProjectResponse struct {
	Project       projectResponse `json:"project"`
	FeedbackCount int             `json:"feedbackCount"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{ProjectFields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/{projectId}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Update handles PUT /api/projects/{projectId}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{ProjectID: id, ProjectFields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{projectId}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Extend handles POST /api/projects/{projectId}/extend?weeks=N.
func (h *ProjectHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	weeks, err := queryInt(r, "weeks", 1)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.ExtendFeedback(r.Context(), id, weeks)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Search handles GET /api/projects?search=&status=&page=.
func (h *ProjectHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.SearchProjects(r.Context(), project.SearchInput{
		Keyword: r.URL.Query().Get("search"),
		Status:  queryStatus(r),
		Page:    page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectPage(result))
}

// Mine handles GET /api/projects/my-projects?status=&page=.
func (h *ProjectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListMyProjects(r.Context(), project.ListInput{Status: queryStatus(r), Page: page})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectPage(result))
}

// ByUser handles GET /api/projects/user-projects?userId=&status=&page=.
func (h *ProjectHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListUserProjects(r.Context(), userID, project.ListInput{Status: queryStatus(r), Page: page})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectPage(result))
}

// Recent handles GET /api/projects/recent-project?userId=.
func (h *ProjectHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent, err := h.svc.GetRecentProject(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recentProjectResponse{
		Project:       toProjectResponse(&recent.Project),
		FeedbackCount: recent.FeedbackCount,
	})
}
