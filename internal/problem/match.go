package problem

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// titles adapts a problem slice to fuzzy.Source.
type titles []Problem

func (t titles) String(i int) string { return t[i].Name }
func (t titles) Len() int            { return len(t) }

// Match resolves a user reference to problems. A numeric reference matches
// by ID; an exact (case-insensitive) title wins over fuzzy matches; otherwise
// problems are returned best fuzzy match first.
func Match(ref string, pool []Problem) []Problem {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}

	if id, err := strconv.Atoi(ref); err == nil {
		for _, p := range pool {
			if p.ID == id {
				return []Problem{p}
			}
		}
		return nil
	}

	for _, p := range pool {
		if strings.EqualFold(p.Name, ref) {
			return []Problem{p}
		}
	}

	matches := fuzzy.FindFrom(ref, titles(pool))
	out := make([]Problem, 0, len(matches))
	for _, m := range matches {
		out = append(out, pool[m.Index])
	}
	return out
}
