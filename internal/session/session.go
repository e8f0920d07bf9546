// Package session wires the store, selector, scheduler and progress
// aggregates into the operations the CLI runs: picking the next problem,
// recording a review and summarizing progress.
package session

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/config"
	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/selector"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

// Repos groups the repositories the service reads and writes.
type Repos struct {
	Problems   store.ProblemRepo
	Events     store.EventRepo
	Milestones store.MilestoneRepo
	Lists      store.ListRepo
}

// FromStore returns the repositories backed by s.
func FromStore(s *store.Store) Repos {
	return Repos{
		Problems:   s.Problems(),
		Events:     s.Events(),
		Milestones: s.Milestones(),
		Lists:      s.Lists(),
	}
}

// Service runs review sessions against a set of repositories.
type Service struct {
	repos Repos
	cfg   config.Config
	today func() civil.Date
}

// New creates a Service. A nil today uses the local calendar date.
func New(repos Repos, cfg config.Config, today func() civil.Date) *Service {
	if today == nil {
		today = problem.Today
	}
	return &Service{repos: repos, cfg: cfg, today: today}
}

// Today returns the date the service schedules against.
func (s *Service) Today() civil.Date {
	return s.today()
}

// Next returns the problem to present next in list (all lists when empty).
func (s *Service) Next(ctx context.Context, list string) (selector.Selection, error) {
	pool, err := s.repos.Problems.FindAll(ctx, list)
	if err != nil {
		return selector.Selection{}, fmt.Errorf("load problems: %w", err)
	}
	return selector.PickNext(pool, list, s.today()), nil
}

// Queue returns up to limit upcoming problems in presentation order.
func (s *Service) Queue(ctx context.Context, list string, limit int) ([]selector.Selection, error) {
	pool, err := s.repos.Problems.FindAll(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("load problems: %w", err)
	}
	return selector.Queue(pool, list, s.today(), limit), nil
}

// Outcome describes one recorded review.
type Outcome struct {
	Quality spacedrep.Quality
	Before  problem.Problem
	After   problem.Problem
	Result  spacedrep.Result

	// Milestones holds milestones reached by this review that had not
	// been announced before.
	Milestones []progress.Milestone

	// Warnings holds failures of best-effort steps (event log,
	// milestone acknowledgement). The review itself was saved.
	Warnings []error
}

// Record rates a review of problem id, persists the new schedule and
// reports any newly reached milestones. The quality is checked before
// the store is touched.
func (s *Service) Record(ctx context.Context, id int, q spacedrep.Quality) (Outcome, error) {
	if !q.IsValid() {
		return Outcome{}, fmt.Errorf("%w: got %d", spacedrep.ErrInvalidQuality, int(q))
	}
	today := s.today()

	pool, err := s.repos.Problems.FindAll(ctx, "")
	if err != nil {
		return Outcome{}, fmt.Errorf("load problems: %w", err)
	}
	idx := indexOf(pool, id)
	if idx < 0 {
		return Outcome{}, fmt.Errorf("record review: problem %d: %w", id, store.ErrNotFound)
	}
	out := Outcome{Quality: q, Before: pool[idx]}

	out.Result, err = spacedrep.Compute(q, spacedrep.StateOf(out.Before.ReviewState), today)
	if err != nil {
		return Outcome{}, err
	}
	out.After, err = s.repos.Problems.WriteReview(ctx, id, out.Result, today)
	if err != nil {
		return Outcome{}, fmt.Errorf("record review: %w", err)
	}

	if _, err := s.repos.Events.AppendReview(ctx, store.ReviewEventData{
		ProblemID:  id,
		Quality:    q,
		ReviewedOn: today,
		Result:     out.Result,
	}); err != nil {
		out.Warnings = append(out.Warnings, fmt.Errorf("record review event: %w", err))
	}

	before := progress.Milestones(pool, today, s.cfg.Milestones)
	after := make([]problem.Problem, len(pool))
	copy(after, pool)
	after[idx].ReviewState = spacedrep.Apply(out.Before.ReviewState, out.Result, today)
	reached := progress.Milestones(after, today, s.cfg.Milestones)

	acked, err := s.repos.Milestones.Acknowledged(ctx)
	if err != nil {
		out.Warnings = append(out.Warnings, err)
	}
	out.Milestones = progress.Crossed(before, reached, s.cfg.Milestones, acked)
	if len(out.Milestones) > 0 {
		keys := make([]string, len(out.Milestones))
		for i, m := range out.Milestones {
			keys[i] = m.Key()
		}
		if err := s.repos.Milestones.Acknowledge(ctx, keys...); err != nil {
			out.Warnings = append(out.Warnings, err)
		}
	}
	return out, nil
}

// Reset returns every problem in list (all lists when empty) to NEW and
// drops its review history. Milestone acknowledgements are rebuilt from
// what the remaining progress still holds, so milestones lost by the reset
// can be celebrated again.
func (s *Service) Reset(ctx context.Context, list string) (int, error) {
	n, err := s.repos.Problems.Reset(ctx, list)
	if err != nil {
		return 0, fmt.Errorf("reset progress: %w", err)
	}
	if err := s.repos.Milestones.Clear(ctx); err != nil {
		return n, fmt.Errorf("reset milestones: %w", err)
	}
	pool, err := s.repos.Problems.FindAll(ctx, "")
	if err != nil {
		return n, fmt.Errorf("load problems: %w", err)
	}
	var keys []string
	for _, m := range progress.Reached(progress.Milestones(pool, s.today(), s.cfg.Milestones), s.cfg.Milestones) {
		keys = append(keys, m.Key())
	}
	if err := s.repos.Milestones.Acknowledge(ctx, keys...); err != nil {
		return n, fmt.Errorf("reset milestones: %w", err)
	}
	return n, nil
}

func indexOf(pool []problem.Problem, id int) int {
	for i, p := range pool {
		if p.ID == id {
			return i
		}
	}
	return -1
}
