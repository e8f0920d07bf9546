package progress

import (
	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// Streak counts consecutive calendar days with at least one review, walking
// back from today. A quiet today does not break the streak if yesterday had
// activity.
//
// Only the most recent review date of each problem is known to the pool, so
// a day whose problems were all reviewed again later drops out of the count.
func Streak(pool []problem.Problem, today civil.Date) int {
	days := make(map[civil.Date]bool)
	for _, p := range pool {
		if p.LastReviewed != nil {
			days[*p.LastReviewed] = true
		}
	}
	return StreakFromDays(days, today)
}

// StreakFromDays applies the streak rule to an explicit set of active days.
func StreakFromDays(days map[civil.Date]bool, today civil.Date) int {
	day := today
	if !days[day] {
		day = today.AddDays(-1)
		if !days[day] {
			return 0
		}
	}
	n := 0
	for days[day] {
		n++
		day = day.AddDays(-1)
	}
	return n
}

// StreakTier grades a streak against the hot and legendary thresholds.
type StreakTier int

const (
	TierNone StreakTier = iota
	TierWarm
	TierHot
	TierLegendary
)

// Tier returns the tier for a streak of n days.
func Tier(n, hot, legendary int) StreakTier {
	switch {
	case n <= 0:
		return TierNone
	case n >= legendary:
		return TierLegendary
	case n >= hot:
		return TierHot
	default:
		return TierWarm
	}
}

// Badge returns the emoji shown next to a streak.
func (t StreakTier) Badge() string {
	switch t {
	case TierLegendary:
		return "🏆"
	case TierHot:
		return "🔥🔥"
	case TierWarm:
		return "🔥"
	default:
		return ""
	}
}

// NextTier returns the next streak length that earns a higher tier, or 0 once
// the legendary tier is reached.
func NextTier(n, hot, legendary int) int {
	for _, t := range []int{1, hot, legendary} {
		if t > n {
			return t
		}
	}
	return 0
}
