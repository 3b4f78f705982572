package config

import (
	"fmt"
	"slices"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	return nil
}

func (s *ScoringConfig) validate() error {
	if !slices.Contains([]string{"mean", "sum"}, s.Strategy) {
		return fmt.Errorf("strategy must be mean or sum (got %q)", s.Strategy)
	}
	if s.MinScore < 0 || s.MaxScore <= s.MinScore {
		return fmt.Errorf("score range [%v, %v] is invalid", s.MinScore, s.MaxScore)
	}
	if s.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", s.MaxContentLength)
	}
	return nil
}

func (p *PaginationConfig) validate() error {
	if p.SearchPageSize <= 0 || p.SearchPageSize > 100 {
		return fmt.Errorf("search_page_size must be in 1..100 (got %d)", p.SearchPageSize)
	}
	if p.UserPageSize <= 0 || p.UserPageSize > 100 {
		return fmt.Errorf("user_page_size must be in 1..100 (got %d)", p.UserPageSize)
	}
	if p.MaxExtendWeeks <= 0 {
		return fmt.Errorf("max_extend_weeks must be > 0 (got %d)", p.MaxExtendWeeks)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if !s.SignedURLs {
		return nil
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required for signed urls")
	}
	if s.GoogleAccessID == "" || s.PrivateKey == "" {
		return fmt.Errorf("google_access_id and private_key are required for signed urls")
	}
	if s.SignedURLTTL <= 0 {
		return fmt.Errorf("signed_url_ttl must be > 0 (got %v)", s.SignedURLTTL)
	}
	return nil
}
