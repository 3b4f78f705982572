// Package redis caches public member profiles in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/domain"
)

const profileKeyPrefix = "prier:profile:"

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.CacheConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// ProfileCache stores the public part of a user record. Avatar keys are
// cached instead of URLs so that signed URLs never outlive their expiry.
type ProfileCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewProfileCache creates a cache. A nil client yields a cache that always
// misses.
func NewProfileCache(rdb *goredis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

type profileEntry struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	Intro     string    `json:"intro"`
	Belonging string    `json:"belonging"`
	Tier      string    `json:"tier"`
	BlogURL   *string   `json:"blog_url,omitempty"`
	GithubURL *string   `json:"github_url,omitempty"`
	FigmaURL  *string   `json:"figma_url,omitempty"`
	NotionURL *string   `json:"notion_url,omitempty"`
	AvatarKey *string   `json:"avatar_key,omitempty"`
}

func profileKey(id uuid.UUID) string {
	return profileKeyPrefix + id.String()
}

// Get returns the cached user. The boolean is false on a miss.
func (c *ProfileCache) Get(ctx context.Context, id uuid.UUID) (*domain.User, bool, error) {
	if c.rdb == nil {
		return nil, false, nil
	}

	raw, err := c.rdb.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get profile %s: %w", id, err)
	}

	var e profileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("decode cached profile %s: %w", id, err)
	}

	return &domain.User{
		ID:        e.ID,
		Nickname:  e.Nickname,
		Intro:     e.Intro,
		Belonging: e.Belonging,
		Tier:      e.Tier,
		BlogURL:   e.BlogURL,
		GithubURL: e.GithubURL,
		FigmaURL:  e.FigmaURL,
		NotionURL: e.NotionURL,
		AvatarKey: e.AvatarKey,
	}, true, nil
}

// Set stores the public fields of u.
func (c *ProfileCache) Set(ctx context.Context, u *domain.User) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(profileEntry{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Intro:     u.Intro,
		Belonging: u.Belonging,
		Tier:      u.Tier,
		BlogURL:   u.BlogURL,
		GithubURL: u.GithubURL,
		FigmaURL:  u.FigmaURL,
		NotionURL: u.NotionURL,
		AvatarKey: u.AvatarKey,
	})
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", u.ID, err)
	}

	if err := c.rdb.Set(ctx, profileKey(u.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile %s: %w", u.ID, err)
	}
	return nil
}

// Invalidate drops the cached profile of id.
func (c *ProfileCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, profileKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del profile %s: %w", id, err)
	}
	return nil
}

// Ping checks the Redis connection. A disabled cache is always healthy.
func (c *ProfileCache) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
