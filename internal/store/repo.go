package store

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
)

// NewProblem describes a problem to insert. Empty fields take the defaults
// of the problems table; Category falls back to Pattern.
type NewProblem struct {
	Name       string
	URL        string
	Category   string
	Difficulty string
	Pattern    string
	List       string
}

// SeedResult reports what a Seed call changed.
type SeedResult struct {
	Inserted int
	Updated  int
}

// ProblemRepo reads and writes problems and their review state.
type ProblemRepo interface {
	// Find runs a composed query.
	Find(ctx context.Context, q Query) ([]problem.Problem, error)

	// Count returns how many problems match q, ignoring Order and Limit.
	Count(ctx context.Context, q Query) (int, error)

	// FindDue returns problems due on or before today, earliest first.
	FindDue(ctx context.Context, list string, today civil.Date) ([]problem.Problem, error)

	// FindNew returns never-reviewed problems by ascending ID.
	FindNew(ctx context.Context, list string) ([]problem.Problem, error)

	// FindAll returns every problem in the list, or in all lists when list is empty.
	FindAll(ctx context.Context, list string) ([]problem.Problem, error)

	// Get returns one problem or ErrNotFound.
	Get(ctx context.Context, id int) (problem.Problem, error)

	// WriteReview stores a scheduler result, stamps the review date and
	// increments times_solved in a single statement.
	WriteReview(ctx context.Context, id int, res spacedrep.Result, today civil.Date) (problem.Problem, error)

	// Lists returns the distinct list names, sorted.
	Lists(ctx context.Context) ([]string, error)

	// Patterns returns the distinct patterns of a list, sorted.
	Patterns(ctx context.Context, list string) ([]string, error)

	// Add inserts one problem in NEW state.
	Add(ctx context.Context, np NewProblem) (problem.Problem, error)

	// Seed upserts problems into list by name, keeping existing review state.
	Seed(ctx context.Context, list string, items []NewProblem) (SeedResult, error)

	// Reset restores the NEW state of every problem in list (all lists when
	// empty) and drops their review events. Returns the number of problems reset.
	Reset(ctx context.Context, list string) (int, error)
}

// ReviewEventData is the input for recording one review.
type ReviewEventData struct {
	ProblemID  int
	Quality    spacedrep.Quality
	ReviewedOn civil.Date
	Result     spacedrep.Result
}

// ReviewEvent is one recorded review with the schedule it produced.
type ReviewEvent struct {
	ID           uuid.UUID
	Sequence     int64
	ProblemID    int
	Quality      spacedrep.Quality
	ReviewedOn   civil.Date
	RecordedAt   time.Time
	IntervalDays int
	EaseFactor   float64
	Repetition   int
}

// EventQuery filters review events. Zero fields do not filter.
type EventQuery struct {
	ProblemID int
	Since     civil.Date // reviewed_on >= Since
	Limit     int        // max results (0 = unlimited)
}

// ReviewSummary aggregates the review history.
type ReviewSummary struct {
	Total          int
	Recent         int // reviews on or after the requested date
	AverageQuality float64
}

// EventRepo provides append and query access to review events.
type EventRepo interface {
	// AppendReview records a review event.
	AppendReview(ctx context.Context, data ReviewEventData) (ReviewEvent, error)

	// QueryEvents returns matching events, newest first.
	QueryEvents(ctx context.Context, q EventQuery) ([]ReviewEvent, error)

	// ReviewSummary returns totals over the whole history.
	ReviewSummary(ctx context.Context, since civil.Date) (ReviewSummary, error)
}

// MilestoneRepo persists which milestones have been announced.
type MilestoneRepo interface {
	// Acknowledged returns the set of acknowledged milestone keys.
	Acknowledged(ctx context.Context) (map[string]bool, error)

	// Acknowledge marks keys as announced. Already acknowledged keys are ignored.
	Acknowledge(ctx context.Context, keys ...string) error

	// Clear forgets every acknowledgement.
	Clear(ctx context.Context) error
}

// ListMeta records where a seeded list came from.
type ListMeta struct {
	Name       string
	Version    string
	Source     string
	ImportedAt time.Time
}

// ListRepo stores per-list seeding metadata.
type ListRepo interface {
	// Get returns the metadata of a list or ErrNotFound.
	Get(ctx context.Context, name string) (ListMeta, error)

	// Put creates or replaces the metadata of a list.
	Put(ctx context.Context, meta ListMeta) error

	// All returns metadata for every seeded list, by name.
	All(ctx context.Context) ([]ListMeta, error)
}
