package spacedrep

import (
	"fmt"
	"math"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// State is the part of a review state the scheduler reads.
type State struct {
	Repetition   int
	EaseFactor   float64
	IntervalDays int
}

// StateOf extracts the scheduler input from a stored review state.
func StateOf(rs problem.ReviewState) State {
	return State{
		Repetition:   rs.Repetition,
		EaseFactor:   rs.EaseFactor,
		IntervalDays: rs.IntervalDays,
	}
}

// Result is the next review state produced by Compute.
type Result struct {
	NextReview   civil.Date `json:"next_review"`
	IntervalDays int        `json:"interval_days"`
	EaseFactor   float64    `json:"ease_factor"`
	Repetition   int        `json:"repetition"`
}

// Compute applies one SM-2 review with the given quality to cur.
//
// Intervals beyond the second success are round(interval * ef') using the
// updated ease factor, rounded half away from zero. The reported ease factor
// is rounded to two decimals; the interval is computed from the unrounded
// value. Compute has no side effects: persisting the result, bumping
// times solved and stamping the review date belong to the caller.
func Compute(q Quality, cur State, today civil.Date) (Result, error) {
	if !q.IsValid() {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, int(q))
	}

	ef := math.Max(MinEaseFactor, cur.EaseFactor+easeDelta(q))

	var rep, interval int
	if !q.IsSuccess() {
		rep = 0
		interval = FirstInterval
	} else {
		rep = cur.Repetition + 1
		switch rep {
		case 1:
			interval = FirstInterval
		case 2:
			interval = SecondInterval
		default:
			interval = int(math.Round(float64(cur.IntervalDays) * ef))
		}
	}
	// A corrupt zero interval must not schedule the problem for today.
	interval = max(interval, FirstInterval)

	return Result{
		NextReview:   today.AddDays(interval),
		IntervalDays: interval,
		EaseFactor:   roundEase(ef),
		Repetition:   rep,
	}, nil
}

// Apply returns the review state written back after a review on today.
func Apply(rs problem.ReviewState, res Result, today civil.Date) problem.ReviewState {
	next := res.NextReview
	return problem.ReviewState{
		Repetition:   res.Repetition,
		EaseFactor:   res.EaseFactor,
		IntervalDays: res.IntervalDays,
		NextReview:   &next,
		LastReviewed: problem.DatePtr(today),
		TimesSolved:  rs.TimesSolved + 1,
	}
}

func roundEase(ef float64) float64 {
	return math.Round(ef*100) / 100
}
