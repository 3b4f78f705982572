package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Projects *ProjectHandler
	Comments *CommentHandler
	Users    *UserHandler
	Auth     *AuthHandler
	Metrics  http.Handler
}

// NewRouter registers every route on a ServeMux. The literal project
// sub-paths take precedence over {projectId} because they are more specific.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects", h.Projects.Search)
	mux.HandleFunc("GET /api/projects/my-projects", h.Projects.Mine)
	mux.HandleFunc("GET /api/projects/user-projects", h.Projects.ByUser)
	mux.HandleFunc("GET /api/projects/recent-project", h.Projects.Recent)
	mux.HandleFunc("GET /api/projects/{projectId}", h.Projects.Get)
	mux.HandleFunc("PUT /api/projects/{projectId}", h.Projects.Update)
	mux.HandleFunc("DELETE /api/projects/{projectId}", h.Projects.Delete)
	mux.HandleFunc("POST /api/projects/{projectId}/extend", h.Projects.Extend)

	mux.HandleFunc("POST /api/projects/{projectId}/comments", h.Comments.Create)
	mux.HandleFunc("GET /api/projects/{projectId}/comments", h.Comments.List)
	mux.HandleFunc("PUT /api/projects/{projectId}/comments/{commentId}", h.Comments.Update)
	mux.HandleFunc("DELETE /api/projects/{projectId}/comments/{commentId}", h.Comments.Delete)

	mux.HandleFunc("GET /api/users/me/notifications", h.Comments.Notifications)
	mux.HandleFunc("GET /api/users/{userId}/comments", h.Comments.ByUser)
	mux.HandleFunc("GET /api/users/{userId}/profile", h.Users.Profile)

	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	return mux
}
