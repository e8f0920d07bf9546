package problem

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Defaults for a problem that has never been reviewed.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	DefaultPattern    = "General"
	DefaultList       = "Custom"
)

// ErrCorruptState is returned when a stored review state breaks its invariants.
var ErrCorruptState = errors.New("problem: corrupt review state")

// ReviewState holds the mutable scheduling fields of a problem.
type ReviewState struct {
	Repetition   int         `json:"repetition"`
	EaseFactor   float64     `json:"ease_factor"`
	IntervalDays int         `json:"interval_days"`
	NextReview   *civil.Date `json:"next_review,omitempty"`   // nil while the problem is NEW.
	LastReviewed *civil.Date `json:"last_reviewed,omitempty"` // nil until the first review.
	TimesSolved  int         `json:"times_solved"`
}

// DefaultReviewState returns the state of a problem that was never reviewed.
func DefaultReviewState() ReviewState {
	return ReviewState{EaseFactor: DefaultEaseFactor}
}

// Validate checks the review state invariants.
func (rs ReviewState) Validate() error {
	switch {
	case rs.EaseFactor < MinEaseFactor:
		return fmt.Errorf("%w: ease factor %.2f below %.1f", ErrCorruptState, rs.EaseFactor, MinEaseFactor)
	case rs.Repetition < 0 || rs.IntervalDays < 0 || rs.TimesSolved < 0:
		return fmt.Errorf("%w: negative counter", ErrCorruptState)
	case (rs.NextReview == nil) != (rs.TimesSolved == 0):
		return fmt.Errorf("%w: next review set=%t but times solved=%d",
			ErrCorruptState, rs.NextReview != nil, rs.TimesSolved)
	case rs.NextReview != nil && rs.IntervalDays < 1:
		return fmt.Errorf("%w: scheduled with interval %d", ErrCorruptState, rs.IntervalDays)
	}
	return nil
}

// Problem is a single interview problem and its review state.
type Problem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Pattern    string `json:"pattern"`
	List       string `json:"list"`

	ReviewState
}

// IsNew reports whether the problem has never been reviewed.
func (p Problem) IsNew() bool {
	return p.NextReview == nil
}

// IsDue reports whether the problem is scheduled on or before today.
func (p Problem) IsDue(today civil.Date) bool {
	return p.NextReview != nil && !p.NextReview.After(today)
}

// OverdueDays returns how many days past its review date the problem is.
// Returns 0 for NEW problems and problems that are not yet due.
func (p Problem) OverdueDays(today civil.Date) int {
	if !p.IsDue(today) {
		return 0
	}
	return today.DaysSince(*p.NextReview)
}

// DaysUntilDue returns the number of days until the next review, or 0 when due.
func (p Problem) DaysUntilDue(today civil.Date) int {
	if p.NextReview == nil || !p.NextReview.After(today) {
		return 0
	}
	return p.NextReview.DaysSince(today)
}

// Status describes where a problem sits in the review cycle.
type Status string

const (
	StatusNew       Status = "new"
	StatusDueToday  Status = "due_today"
	StatusOverdue   Status = "overdue"
	StatusScheduled Status = "scheduled"
)

// Status returns the review status relative to today.
func (p Problem) Status(today civil.Date) Status {
	switch {
	case p.IsNew():
		return StatusNew
	case p.NextReview.After(today):
		return StatusScheduled
	case p.OverdueDays(today) == 0:
		return StatusDueToday
	default:
		return StatusOverdue
	}
}

// Today returns the current local calendar date. Only the CLI edge should
// call it; everything below takes today as an argument.
func Today() civil.Date {
	return civil.DateOf(time.Now())
}

// DatePtr returns a pointer to a copy of d.
func DatePtr(d civil.Date) *civil.Date {
	return &d
}
