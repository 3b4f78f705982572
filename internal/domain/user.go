package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member. Users are created by the sign-in
// flow; the feedback core only reads them.
type User struct {
	ID           uuid.UUID
	Email        string
	Nickname     string
	Intro        string
	Belonging    string
	Tier         string
	BlogURL      *string
	GithubURL    *string
	FigmaURL     *string
	NotionURL    *string
	AvatarKey    *string
	LastLoginAt  *time.Time
	LastLogoutAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileSummary is the public view of a user shown next to projects and comments.
type ProfileSummary struct {
	UserID    uuid.UUID
	Nickname  string
	Intro     string
	Belonging string
	Tier      string
	AvatarURL string
	BlogURL   *string
	GithubURL *string
	FigmaURL  *string
	NotionURL *string
}
