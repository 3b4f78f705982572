package middleware

import (
	"context"
	"net/http"
)

type loaderInstaller interface {
	WithLoader(ctx context.Context) context.Context
}

// Loaders attaches a fresh per-request batch loader to the context so that
// profile lookups within one request are coalesced.
func Loaders(installer loaderInstaller) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(installer.WithLoader(r.Context())))
		})
	}
}
