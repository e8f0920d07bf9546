package progress

import (
	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// DayCount is the number of problems last reviewed on one day.
type DayCount struct {
	Day   civil.Date `json:"day"`
	Count int        `json:"count"`
}

// Activity returns one entry per day for the last n days, oldest first,
// ending with today.
func Activity(pool []problem.Problem, today civil.Date, n int) []DayCount {
	if n <= 0 {
		return nil
	}
	first := today.AddDays(-(n - 1))
	out := make([]DayCount, n)
	for i := range out {
		out[i].Day = first.AddDays(i)
	}
	for _, p := range pool {
		if p.LastReviewed == nil {
			continue
		}
		i := p.LastReviewed.DaysSince(first)
		if i >= 0 && i < n {
			out[i].Count++
		}
	}
	return out
}

// SolvedOn counts problems whose last review fell on day.
func SolvedOn(pool []problem.Problem, day civil.Date) int {
	n := 0
	for _, p := range pool {
		if p.LastReviewed != nil && *p.LastReviewed == day {
			n++
		}
	}
	return n
}
