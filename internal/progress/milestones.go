package progress

import (
	"fmt"
	"slices"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// Thresholds configures which counts trigger a milestone.
type Thresholds struct {
	Solved  []int `yaml:"solved" json:"solved"`
	Reviews []int `yaml:"reviews" json:"reviews"`
}

// DefaultThresholds returns the built-in milestone thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Solved:  []int{1, 10, 25, 50, 75},
		Reviews: []int{50, 100, 200, 500},
	}
}

// Facts is the milestone-relevant state of a pool at one point in time.
type Facts struct {
	Total           int      `json:"total"`
	Solved          int      `json:"solved"`
	Reviews         int      `json:"reviews"`
	SolvedToday     int      `json:"solved_today"`
	CompletedGroups []string `json:"completed_groups"`

	// SolvedHit and ReviewsHit hold the threshold equal to the current count,
	// or 0 when the count sits between thresholds.
	SolvedHit  int `json:"solved_hit"`
	ReviewsHit int `json:"reviews_hit"`
}

// Milestones detects milestone facts for the pool. Hits are exact matches;
// use Crossed to compare two snapshots.
func Milestones(pool []problem.Problem, today civil.Date, cfg Thresholds) Facts {
	f := Facts{Total: len(pool), SolvedToday: SolvedOn(pool, today)}
	for _, p := range pool {
		if p.TimesSolved > 0 {
			f.Solved++
		}
		f.Reviews += p.TimesSolved
	}
	for label, g := range ByGroup(pool, today) {
		if g.Complete() {
			f.CompletedGroups = append(f.CompletedGroups, label)
		}
	}
	sort.Strings(f.CompletedGroups)
	if slices.Contains(cfg.Solved, f.Solved) {
		f.SolvedHit = f.Solved
	}
	if slices.Contains(cfg.Reviews, f.Reviews) {
		f.ReviewsHit = f.Reviews
	}
	return f
}

// MilestoneKind classifies a milestone.
type MilestoneKind string

const (
	KindSolved  MilestoneKind = "solved"
	KindReviews MilestoneKind = "reviews"
	KindGroup   MilestoneKind = "group"
)

// Milestone is one achievement worth announcing.
type Milestone struct {
	Kind  MilestoneKind `json:"kind"`
	Count int           `json:"count,omitempty"`
	Group string        `json:"group,omitempty"`
	// All marks a solved threshold equal to the whole pool.
	All bool `json:"all,omitempty"`
}

// Key identifies the milestone in the acknowledged set, e.g. "solved:25",
// "reviews:100" or "group:Trees".
func (m Milestone) Key() string {
	if m.Kind == KindGroup {
		return string(KindGroup) + ":" + m.Group
	}
	return fmt.Sprintf("%s:%d", m.Kind, m.Count)
}

// Title is the announcement line for the milestone.
func (m Milestone) Title() string {
	switch m.Kind {
	case KindGroup:
		return fmt.Sprintf("✅ Pattern Complete: %s! 100%% mastery!", m.Group)
	case KindReviews:
		return fmt.Sprintf("📊 %d Total Reviews! Consistency is your superpower!", m.Count)
	}
	if m.All {
		return fmt.Sprintf("🏆 ALL %d PROBLEMS SOLVED! You're interview-ready!", m.Count)
	}
	switch m.Count {
	case 1:
		return "🌱 First Problem Solved! The journey begins!"
	case 10:
		return "⭐ 10 Problems Solved! You're building momentum!"
	case 25:
		return "🌟 25 Problems Solved! Quarter century, impressive!"
	case 50:
		return "💎 50 Problems Solved! Halfway to mastery!"
	}
	return fmt.Sprintf("🎯 %d Problems Solved!", m.Count)
}

// Crossed reports every milestone reached between two snapshots that is not
// already in acked. A batch that jumps over several thresholds reports each
// of them. Results are ordered solved, reviews, then groups by label.
func Crossed(before, after Facts, cfg Thresholds, acked map[string]bool) []Milestone {
	var out []Milestone
	add := func(m Milestone) {
		if !acked[m.Key()] {
			out = append(out, m)
		}
	}
	for _, t := range sortedCopy(cfg.Solved) {
		if before.Solved < t && t <= after.Solved {
			add(Milestone{Kind: KindSolved, Count: t, All: t == after.Total})
		}
	}
	for _, t := range sortedCopy(cfg.Reviews) {
		if before.Reviews < t && t <= after.Reviews {
			add(Milestone{Kind: KindReviews, Count: t})
		}
	}
	for _, g := range after.CompletedGroups {
		if !slices.Contains(before.CompletedGroups, g) {
			add(Milestone{Kind: KindGroup, Group: g})
		}
	}
	return out
}

// Reached lists every milestone the facts have already passed, for display.
func Reached(f Facts, cfg Thresholds) []Milestone {
	return Crossed(Facts{}, f, cfg, nil)
}

// Next returns the lowest threshold above n, or 0 if none is left.
func Next(thresholds []int, n int) int {
	for _, t := range sortedCopy(thresholds) {
		if t > n {
			return t
		}
	}
	return 0
}

func sortedCopy(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
