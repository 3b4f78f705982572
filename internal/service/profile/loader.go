package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/cocodas/prier-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userLoader = dataloader.Loader[uuid.UUID, *domain.User]

type loaderKey struct{}

// WithLoader attaches a request-scoped user loader to ctx. Profiles requested
// through LoadProfiles during the request are batched and memoized.
func (s *Service) WithLoader(ctx context.Context) context.Context {
	return context.WithValue(ctx, loaderKey{}, s.newLoader())
}

func (s *Service) loaderFromCtx(ctx context.Context) *userLoader {
	if l, ok := ctx.Value(loaderKey{}).(*userLoader); ok && l != nil {
		return l
	}
	return s.newLoader()
}

func (s *Service) newLoader() *userLoader {
	return dataloader.NewBatchedLoader(
		newUsersBatchFn(s.users),
		dataloader.WithWait[uuid.UUID, *domain.User](wait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
	)
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.User], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		// Unknown ids resolve to nil so that one deleted author does not fail
		// the whole batch.
		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

// LoadProfiles resolves the profiles of ids in as few queries as possible.
// Ids without a user are absent from the result.
func (s *Service) LoadProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ProfileSummary, error) {
	keys := dedupe(ids)
	result := make(map[uuid.UUID]domain.ProfileSummary, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	users, errs := s.loaderFromCtx(ctx).LoadMany(ctx, keys)()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("profile.LoadProfiles: user %s: %w", keys[i], err)
		}
	}

	for _, u := range users {
		if u == nil {
			continue
		}
		summary, err := s.summarize(u)
		if err != nil {
			return nil, fmt.Errorf("profile.LoadProfiles: %w", err)
		}
		result[u.ID] = summary
	}
	return result, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
