package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the lifecycle stage of a project's feedback window.
type ProjectStatus string

const (
	ProjectStatusPreparing  ProjectStatus = "PREPARING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPreparing, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// StatusForPeriod derives the status of a feedback window relative to now.
func StatusForPeriod(start, end, now time.Time) ProjectStatus {
	switch {
	case now.Before(start):
		return ProjectStatusPreparing
	case now.After(end):
		return ProjectStatusCompleted
	default:
		return ProjectStatusInProgress
	}
}

// Project is a published work that collects scored comments.
// ScoreSum and CommentCount are the raw aggregate over live comments;
// Score is derived from them by a ScoreCalculator.
type Project struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Introduce       string
	Goal            string
	StartDate       time.Time
	EndDate         time.Time
	Status          ProjectStatus
	TeamName        string
	TeamDescription string
	TeamMate        string
	Link            string
	ScoreSum        float64
	CommentCount    int
	Score           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether userID owns the project.
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// ApplyScoreDelta adds a signed delta to the raw aggregate and re-derives the
// displayed score in the same step.
func (p *Project) ApplyScoreDelta(d ScoreDelta, calc ScoreCalculator) {
	p.ScoreSum += d.Sum
	p.CommentCount += d.Count
	p.Recalculate(calc)
}

// Recalculate snaps the stored aggregate to the score grid and re-derives
// Score from it. A project without comments always has a zero sum.
func (p *Project) Recalculate(calc ScoreCalculator) {
	p.ScoreSum = RoundScore(p.ScoreSum)
	if p.CommentCount == 0 {
		p.ScoreSum = 0
	}
	p.Score = calc.Calculate(p.ScoreSum, p.CommentCount)
}

// ExtendFeedback moves the end date forward by whole weeks and reopens a
// completed project.
func (p *Project) ExtendFeedback(weeks int, now time.Time) {
	p.EndDate = p.EndDate.AddDate(0, 0, 7*weeks)
	p.Status = StatusForPeriod(p.StartDate, p.EndDate, now)
}

// RecentProject is a user's newest project together with its feedback count.
type RecentProject struct {
	Project       Project
	FeedbackCount int
}
