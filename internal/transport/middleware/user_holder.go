package middleware

import (
	"context"

	"github.com/google/uuid"
)

type userHolderKey struct{}

type userHolder struct {
	id uuid.UUID
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

func recordUser(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		h.id = id
	}
}
