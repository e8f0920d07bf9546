package problem

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
)

var today = civil.Date{Year: 2025, Month: 3, Day: 10}

func scheduled(next civil.Date) Problem {
	return Problem{
		ID:   1,
		Name: "Two Sum",
		ReviewState: ReviewState{
			Repetition:   1,
			EaseFactor:   2.5,
			IntervalDays: 1,
			NextReview:   DatePtr(next),
			LastReviewed: DatePtr(next.AddDays(-1)),
			TimesSolved:  1,
		},
	}
}

func TestDefaultReviewState_IsValidAndNew(t *testing.T) {
	rs := DefaultReviewState()
	if err := rs.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	p := Problem{ReviewState: rs}
	if !p.IsNew() {
		t.Error("expected default state to be NEW")
	}
	if p.IsDue(today) {
		t.Error("NEW problem must not count as due")
	}
	if p.Status(today) != StatusNew {
		t.Errorf("Status = %q, want %q", p.Status(today), StatusNew)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		next    civil.Date
		want    Status
		overdue int
		until   int
	}{
		{"due today", today, StatusDueToday, 0, 0},
		{"overdue", today.AddDays(-3), StatusOverdue, 3, 0},
		{"scheduled", today.AddDays(4), StatusScheduled, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scheduled(tt.next)
			if got := p.Status(today); got != tt.want {
				t.Errorf("Status = %q, want %q", got, tt.want)
			}
			if got := p.OverdueDays(today); got != tt.overdue {
				t.Errorf("OverdueDays = %d, want %d", got, tt.overdue)
			}
			if got := p.DaysUntilDue(today); got != tt.until {
				t.Errorf("DaysUntilDue = %d, want %d", got, tt.until)
			}
		})
	}
}

func TestValidate_RejectsBrokenInvariants(t *testing.T) {
	next := DatePtr(today)
	tests := []struct {
		name string
		rs   ReviewState
	}{
		{"ease below floor", ReviewState{EaseFactor: 1.2}},
		{"negative repetition", ReviewState{EaseFactor: 2.5, Repetition: -1}},
		{"scheduled but never solved", ReviewState{EaseFactor: 2.5, IntervalDays: 1, NextReview: next}},
		{"solved but unscheduled", ReviewState{EaseFactor: 2.5, TimesSolved: 2}},
		{"scheduled with zero interval", ReviewState{EaseFactor: 2.5, NextReview: next, TimesSolved: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rs.Validate()
			if !errors.Is(err, ErrCorruptState) {
				t.Errorf("Validate() = %v, want ErrCorruptState", err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	pool := []Problem{
		{ID: 1, Name: "Two Sum"},
		{ID: 2, Name: "Valid Anagram"},
		{ID: 3, Name: "Two Sum II - Input Array Is Sorted"},
		{ID: 4, Name: "Longest Substring Without Repeating Characters"},
	}

	t.Run("by id", func(t *testing.T) {
		got := Match("2", pool)
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("Match(2) = %v, want problem 2", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if got := Match("99", pool); len(got) != 0 {
			t.Fatalf("Match(99) = %v, want none", got)
		}
	})

	t.Run("exact title beats fuzzy", func(t *testing.T) {
		got := Match("two sum", pool)
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("Match(two sum) = %v, want only problem 1", got)
		}
	})

	t.Run("fuzzy", func(t *testing.T) {
		got := Match("lngst substr", pool)
		if len(got) == 0 || got[0].ID != 4 {
			t.Fatalf("Match(lngst substr) = %v, want problem 4 first", got)
		}
	})

	t.Run("blank", func(t *testing.T) {
		if got := Match("  ", pool); got != nil {
			t.Fatalf("Match(blank) = %v, want nil", got)
		}
	})
}
