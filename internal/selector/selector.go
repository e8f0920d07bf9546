// Package selector decides which problem to practice next.
package selector

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// Kind tells how a selection was made.
type Kind int

const (
	// NoneDue means nothing is due and no NEW problem is left in scope.
	NoneDue Kind = iota
	// Due means the problem is scheduled on or before today.
	Due
	// New means the problem has never been reviewed.
	New
)

func (k Kind) String() string {
	switch k {
	case Due:
		return "due"
	case New:
		return "new"
	default:
		return "none due"
	}
}

// Selection is the result of PickNext. Problem is the zero value when Kind
// is NoneDue.
type Selection struct {
	Kind    Kind
	Problem problem.Problem
}

// Found reports whether a problem was selected.
func (s Selection) Found() bool {
	return s.Kind != NoneDue
}

// PickNext returns the one problem to present next.
//
// Due problems win over NEW ones. Among due problems the earliest review date
// is picked first, then the lowest ID. Among NEW problems the lowest ID wins.
// An empty scope matches every list; an unknown scope yields NoneDue.
func PickNext(pool []problem.Problem, scope string, today civil.Date) Selection {
	q := Queue(pool, scope, today, 1)
	if len(q) == 0 {
		return Selection{Kind: NoneDue}
	}
	return q[0]
}

// Queue returns the review queue in presentation order: due problems by
// review date, then NEW problems by ID. Scheduled problems are excluded.
// A limit of 0 or less returns the whole queue.
func Queue(pool []problem.Problem, scope string, today civil.Date, limit int) []Selection {
	var due, fresh []problem.Problem
	for _, p := range pool {
		if scope != "" && p.List != scope {
			continue
		}
		switch {
		case p.IsNew():
			fresh = append(fresh, p)
		case p.IsDue(today):
			due = append(due, p)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := *due[i].NextReview, *due[j].NextReview
		if a != b {
			return a.Before(b)
		}
		return due[i].ID < due[j].ID
	})
	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].ID < fresh[j].ID
	})

	out := make([]Selection, 0, len(due)+len(fresh))
	for _, p := range due {
		out = append(out, Selection{Kind: Due, Problem: p})
	}
	for _, p := range fresh {
		out = append(out, Selection{Kind: New, Problem: p})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
