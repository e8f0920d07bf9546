package session

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

// Dashboard holds everything the dashboard screen shows.
type Dashboard struct {
	List     string
	Today    civil.Date
	Overall  progress.OverallStats
	Groups   []progress.Group
	Activity []progress.DayCount
	Reviews  store.ReviewSummary

	Streak   int
	Tier     progress.StreakTier
	NextTier int // streak length of the next tier, 0 at the top

	Facts       progress.Facts
	NextSolved  int // next solved milestone, 0 when all are reached
	NextReviews int
}

// Dashboard aggregates progress for list (all lists when empty).
func (s *Service) Dashboard(ctx context.Context, list string) (Dashboard, error) {
	today := s.today()
	pool, err := s.repos.Problems.FindAll(ctx, list)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load problems: %w", err)
	}

	d := Dashboard{
		List:     list,
		Today:    today,
		Overall:  progress.Overall(pool, today),
		Groups:   progress.OrderedGroups(progress.ByGroup(pool, today), catalog.PatternOrder),
		Activity: progress.Activity(pool, today, s.cfg.ActivityDays),
		Facts:    progress.Milestones(pool, today, s.cfg.Milestones),
	}
	d.NextSolved = progress.Next(s.cfg.Milestones.Solved, d.Facts.Solved)
	d.NextReviews = progress.Next(s.cfg.Milestones.Reviews, d.Facts.Reviews)

	d.Streak, err = s.streak(ctx, pool, today)
	if err != nil {
		return Dashboard{}, err
	}
	d.Tier = progress.Tier(d.Streak, s.cfg.Streak.Hot, s.cfg.Streak.Legendary)
	d.NextTier = progress.NextTier(d.Streak, s.cfg.Streak.Hot, s.cfg.Streak.Legendary)

	d.Reviews, err = s.repos.Events.ReviewSummary(ctx, today.AddDays(1-s.cfg.ActivityDays))
	if err != nil {
		return Dashboard{}, fmt.Errorf("summarize reviews: %w", err)
	}
	return d, nil
}

// streak counts active days from the event log, which remembers every
// review day, merged with the last review date of each problem.
func (s *Service) streak(ctx context.Context, pool []problem.Problem, today civil.Date) (int, error) {
	days := make(map[civil.Date]bool)
	for _, p := range pool {
		if p.LastReviewed != nil {
			days[*p.LastReviewed] = true
		}
	}
	ids := make(map[int]bool, len(pool))
	for _, p := range pool {
		ids[p.ID] = true
	}
	events, err := s.repos.Events.QueryEvents(ctx, store.EventQuery{})
	if err != nil {
		return 0, fmt.Errorf("load review history: %w", err)
	}
	for _, ev := range events {
		if ids[ev.ProblemID] {
			days[ev.ReviewedOn] = true
		}
	}
	return progress.StreakFromDays(days, today), nil
}
