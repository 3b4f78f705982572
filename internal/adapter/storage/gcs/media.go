// Package gcs resolves object keys in the media bucket to URLs that clients
// can fetch.
package gcs

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/cocodas/prier-backend/internal/config"
)

const defaultPublicHost = "https://storage.googleapis.com"

// MediaURLs turns stored object keys into public or signed URLs.
type MediaURLs struct {
	bucket        string
	cdnDomain     string
	publicBaseURL string
	defaultAvatar string

	signed   bool
	accessID string
	key      []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewMediaURLs creates a URL resolver from storage configuration.
func NewMediaURLs(cfg config.StorageConfig) *MediaURLs {
	return &MediaURLs{
		bucket:        cfg.Bucket,
		cdnDomain:     strings.TrimSuffix(cfg.CDNDomain, "/"),
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		defaultAvatar: cfg.DefaultAvatar,
		signed:        cfg.SignedURLs,
		accessID:      cfg.GoogleAccessID,
		key:           []byte(cfg.PrivateKey),
		ttl:           cfg.SignedURLTTL,
		now:           time.Now,
	}
}

// PublicURL returns the URL for key. Signed mode returns a time-limited GET
// URL; otherwise the CDN domain wins over the public base URL, which wins over
// the default storage host.
func (m *MediaURLs) PublicURL(key string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", nil
	}

	if m.signed {
		u, err := storage.SignedURL(m.bucket, key, &storage.SignedURLOptions{
			GoogleAccessID: m.accessID,
			PrivateKey:     m.key,
			Method:         http.MethodGet,
			Expires:        m.now().Add(m.ttl),
			Scheme:         storage.SigningSchemeV4,
		})
		if err != nil {
			return "", fmt.Errorf("sign url for %s: %w", key, err)
		}
		return u, nil
	}

	switch {
	case m.cdnDomain != "":
		return fmt.Sprintf("https://%s/%s", m.cdnDomain, key), nil
	case m.publicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", m.publicBaseURL, m.bucket, key), nil
	default:
		return fmt.Sprintf("%s/%s/%s", defaultPublicHost, m.bucket, key), nil
	}
}

// AvatarURL resolves an optional avatar key, falling back to the configured
// default avatar when the user has none.
func (m *MediaURLs) AvatarURL(key *string) (string, error) {
	if key == nil || strings.TrimSpace(*key) == "" {
		return m.defaultAvatar, nil
	}
	return m.PublicURL(*key)
}
