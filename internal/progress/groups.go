package progress

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// GroupStats summarizes the problems sharing one pattern label.
type GroupStats struct {
	Total           int     `json:"total"`
	Solved          int     `json:"solved"`
	Due             int     `json:"due"`
	ProgressPercent float64 `json:"progress_percent"`
}

// Complete reports whether every problem in the group has been solved.
func (g GroupStats) Complete() bool {
	return g.Total > 0 && g.Solved == g.Total
}

// ByGroup returns per-pattern statistics keyed by the pattern label.
// Problems with an empty pattern are grouped under problem.DefaultPattern.
func ByGroup(pool []problem.Problem, today civil.Date) map[string]GroupStats {
	groups := make(map[string]GroupStats)
	for _, p := range pool {
		key := groupKey(p)
		g := groups[key]
		g.Total++
		if p.TimesSolved > 0 {
			g.Solved++
		}
		if p.IsDue(today) {
			g.Due++
		}
		groups[key] = g
	}
	for key, g := range groups {
		g.ProgressPercent = percent(g.Solved, g.Total)
		groups[key] = g
	}
	return groups
}

// Group is a labelled GroupStats, used where order matters.
type Group struct {
	Label string `json:"label"`
	GroupStats
}

// SortedGroups orders groups by progress descending, then label ascending.
func SortedGroups(groups map[string]GroupStats) []Group {
	out := make([]Group, 0, len(groups))
	for label, g := range groups {
		out = append(out, Group{Label: label, GroupStats: g})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProgressPercent != out[j].ProgressPercent {
			return out[i].ProgressPercent > out[j].ProgressPercent
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// OrderedGroups lays groups out in a fixed label order. Labels missing from
// order follow alphabetically; labels in order without problems are skipped.
func OrderedGroups(groups map[string]GroupStats, order []string) []Group {
	out := make([]Group, 0, len(groups))
	seen := make(map[string]bool, len(order))
	for _, label := range order {
		if g, ok := groups[label]; ok && !seen[label] {
			out = append(out, Group{Label: label, GroupStats: g})
			seen[label] = true
		}
	}
	var rest []string
	for label := range groups {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	for _, label := range rest {
		out = append(out, Group{Label: label, GroupStats: groups[label]})
	}
	return out
}

func groupKey(p problem.Problem) string {
	if p.Pattern == "" {
		return problem.DefaultPattern
	}
	return p.Pattern
}
