// Package progress derives dashboard statistics and milestone facts from a
// snapshot of problems. Every function is pure: it reads the pool and an
// explicit today and never mutates either.
package progress

import (
	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// OverallStats summarizes a whole pool.
type OverallStats struct {
	Total        int `json:"total"`
	Started      int `json:"started"`
	New          int `json:"new"`
	DueToday     int `json:"due_today"`
	TotalReviews int `json:"total_reviews"`
}

// Overall counts started, NEW and due problems and the total number of reviews.
// DueToday includes overdue problems.
func Overall(pool []problem.Problem, today civil.Date) OverallStats {
	var s OverallStats
	for _, p := range pool {
		s.Total++
		if p.TimesSolved > 0 {
			s.Started++
		}
		if p.IsNew() {
			s.New++
		}
		if p.IsDue(today) {
			s.DueToday++
		}
		s.TotalReviews += p.TimesSolved
	}
	return s
}

// ProgressPercent returns the share of started problems, 0 for an empty pool.
func (s OverallStats) ProgressPercent() float64 {
	return percent(s.Started, s.Total)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
