package domain

import "math"

// Comment scores are kept on a grid of tenths so that the running aggregate
// stays exact across any sequence of deltas.
const scoreGrid = 10

// RoundScore snaps v to the score grid.
func RoundScore(v float64) float64 {
	return math.Round(v*scoreGrid) / scoreGrid
}

// OnScoreGrid reports whether v has at most one decimal place.
func OnScoreGrid(v float64) bool {
	return math.Abs(v*scoreGrid-math.Round(v*scoreGrid)) < 1e-6
}

// ScoreDelta is a signed change to a project's raw aggregate.
type ScoreDelta struct {
	Sum   float64
	Count int
}

// AddComment is the delta for a newly created comment.
func AddComment(score float64) ScoreDelta { return ScoreDelta{Sum: score, Count: 1} }

// RemoveComment is the delta for a deleted comment.
func RemoveComment(score float64) ScoreDelta { return ScoreDelta{Sum: -score, Count: -1} }

// ChangeComment is the delta for a comment whose score changed from old to new.
func ChangeComment(old, new float64) ScoreDelta { return ScoreDelta{Sum: new - old} }

// ScoreCalculator derives the displayed score from the raw aggregate.
// Implementations must be pure so that recalculating is idempotent.
type ScoreCalculator interface {
	Calculate(sum float64, count int) float64
}

// MeanScore displays the average comment score rounded to two decimals.
type MeanScore struct{}

func (MeanScore) Calculate(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}

// SumScore displays the raw aggregate unchanged.
type SumScore struct{}

func (SumScore) Calculate(sum float64, _ int) float64 { return sum }

// Scoring strategy names accepted by NewScoreCalculator.
const (
	ScoringMean = "mean"
	ScoringSum  = "sum"
)

// NewScoreCalculator returns the calculator registered under name.
func NewScoreCalculator(name string) (ScoreCalculator, error) {
	switch name {
	case ScoringMean, "":
		return MeanScore{}, nil
	case ScoringSum:
		return SumScore{}, nil
	}
	return nil, NewValidationError("scoring.strategy", "unknown strategy "+name)
}
