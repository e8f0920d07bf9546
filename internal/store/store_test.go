package store

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
)

var today = civil.Date{Year: 2025, Month: 3, Day: 10}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedBlind(t *testing.T, s *Store, names ...string) []problem.Problem {
	t.Helper()
	var items []NewProblem
	for _, n := range names {
		items = append(items, NewProblem{Name: n, URL: "https://leetcode.com/problems/x/", Pattern: "Arrays & Hashing"})
	}
	_, err := s.Problems().Seed(context.Background(), "Blind 75", items)
	require.NoError(t, err)
	ps, err := s.Problems().FindAll(context.Background(), "Blind 75")
	require.NoError(t, err)
	return ps
}

func review(t *testing.T, s *Store, id int, q spacedrep.Quality, day civil.Date) problem.Problem {
	t.Helper()
	ctx := context.Background()
	p, err := s.Problems().Get(ctx, id)
	require.NoError(t, err)
	res, err := spacedrep.Compute(q, spacedrep.StateOf(p.ReviewState), day)
	require.NoError(t, err)
	p, err = s.Problems().WriteReview(ctx, id, res, day)
	require.NoError(t, err)
	return p
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{tableProblems, tableReviewEvents, tableMilestoneAcks, tableListMeta, tableGlobalSequence} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestWithPragmas(t *testing.T) {
	assert.Equal(t,
		"a.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		withPragmas("a.db"))
	assert.Contains(t, withPragmas("file::memory:?cache=shared"), "cache=shared&_pragma=journal_mode(WAL)")
}

func TestSeedInsertsNewProblems(t *testing.T) {
	s := openTestStore(t)
	ps := seedBlind(t, s, "Two Sum", "Valid Anagram", "Group Anagrams")

	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.True(t, p.IsNew(), "%s should be NEW", p.Name)
		assert.Equal(t, problem.DefaultEaseFactor, p.EaseFactor)
		assert.Equal(t, "Blind 75", p.List)
		assert.Equal(t, "Arrays & Hashing", p.Category, "category defaults to pattern")
		assert.Equal(t, "Medium", p.Difficulty)
	}
	assert.Less(t, ps[0].ID, ps[1].ID)
}

func TestSeedUpsertKeepsReviewState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ps := seedBlind(t, s, "Two Sum", "Valid Anagram")
	reviewed := review(t, s, ps[0].ID, spacedrep.Good, today)

	res, err := s.Problems().Seed(ctx, "Blind 75", []NewProblem{
		{Name: "Two Sum", URL: "https://leetcode.com/problems/two-sum/", Pattern: "Arrays & Hashing", Difficulty: "Easy"},
		{Name: "Contains Duplicate", Pattern: "Arrays & Hashing"},
	})
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Inserted: 1, Updated: 1}, res)

	got, err := s.Problems().Get(ctx, ps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Easy", got.Difficulty)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", got.URL)
	assert.Equal(t, reviewed.ReviewState, got.ReviewState)
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Problems().Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReview(t *testing.T) {
	s := openTestStore(t)
	ps := seedBlind(t, s, "Two Sum")

	p := review(t, s, ps[0].ID, spacedrep.Good, today)
	assert.Equal(t, 1, p.TimesSolved)
	assert.Equal(t, 1, p.Repetition)
	assert.Equal(t, 1, p.IntervalDays)
	require.NotNil(t, p.NextReview)
	assert.Equal(t, today.AddDays(1), *p.NextReview)
	require.NotNil(t, p.LastReviewed)
	assert.Equal(t, today, *p.LastReviewed)

	p = review(t, s, p.ID, spacedrep.Good, today.AddDays(1))
	assert.Equal(t, 2, p.TimesSolved)
	assert.Equal(t, 6, p.IntervalDays)
	assert.Equal(t, today.AddDays(7), *p.NextReview)
}

func TestWriteReviewUnknownID(t *testing.T) {
	s := openTestStore(t)
	res, err := spacedrep.Compute(spacedrep.Good, spacedrep.State{EaseFactor: 2.5}, today)
	require.NoError(t, err)
	_, err = s.Problems().WriteReview(context.Background(), 77, res, today)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindDueAndNew(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ps := seedBlind(t, s, "A", "B", "C", "D")

	// B due in 1 day from three days ago, D from two days ago.
	review(t, s, ps[1].ID, spacedrep.Good, today.AddDays(-3))
	review(t, s, ps[3].ID, spacedrep.Good, today.AddDays(-2))
	// C scheduled in the future.
	review(t, s, ps[2].ID, spacedrep.Good, today)

	due, err := s.Problems().FindDue(ctx, "Blind 75", today)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, ps[1].ID, due[0].ID)
	assert.Equal(t, ps[3].ID, due[1].ID)

	fresh, err := s.Problems().FindNew(ctx, "")
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, ps[0].ID, fresh[0].ID)

	overdue, err := s.Problems().Find(ctx, Query{Filter: FilterOverdue, Today: today})
	require.NoError(t, err)
	assert.Len(t, overdue, 2)

	n, err := s.Problems().Count(ctx, Query{Filter: FilterStarted})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	none, err := s.Problems().FindDue(ctx, "Grind 169", today)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindRejectsDueWithoutDate(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Problems().Find(context.Background(), Query{Filter: FilterDue})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFindLimitAndPattern(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedBlind(t, s, "A", "B", "C")
	_, err := s.Problems().Add(ctx, NewProblem{Name: "Invert Tree", Pattern: "Trees", List: "Blind 75"})
	require.NoError(t, err)

	got, err := s.Problems().Find(ctx, Query{Pattern: "Trees"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Invert Tree", got[0].Name)

	got, err = s.Problems().Find(ctx, Query{List: "Blind 75", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	patterns, err := s.Problems().Patterns(ctx, "Blind 75")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arrays & Hashing", "Trees"}, patterns)

	_, err = s.Problems().Add(ctx, NewProblem{Name: "Two Pointers One", Pattern: "Two Pointers", List: "Other"})
	require.NoError(t, err)
	patterns, err = s.Problems().Patterns(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arrays & Hashing", "Trees", "Two Pointers"}, patterns)
}

func TestFindOrderPattern(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Problems().Add(ctx, NewProblem{Name: "Z Tree", Pattern: "Trees", List: "Blind 75"})
	require.NoError(t, err)
	seedBlind(t, s, "A", "B")

	got, err := s.Problems().Find(ctx, Query{Order: OrderPattern})
	require.NoError(t, err)
	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"A", "B", "Z Tree"}, names, "pattern first, then insertion order")
}

func TestAddDefaultsAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Problems().Add(ctx, NewProblem{Name: "LRU Cache"})
	require.NoError(t, err)
	assert.Equal(t, problem.DefaultList, p.List)
	assert.Equal(t, problem.DefaultPattern, p.Pattern)
	assert.True(t, p.IsNew())

	_, err = s.Problems().Add(ctx, NewProblem{Name: "LRU Cache"})
	assert.ErrorIs(t, err, ErrDuplicate)

	lists, err := s.Problems().Lists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{problem.DefaultList}, lists)
}

func TestResetRestoresNewState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ps := seedBlind(t, s, "A", "B")
	custom, err := s.Problems().Add(ctx, NewProblem{Name: "Mine"})
	require.NoError(t, err)

	for _, id := range []int{ps[0].ID, custom.ID} {
		p := review(t, s, id, spacedrep.Perfect, today)
		_, err := s.Events().AppendReview(ctx, ReviewEventData{ProblemID: p.ID, Quality: spacedrep.Perfect, ReviewedOn: today})
		require.NoError(t, err)
	}

	n, err := s.Problems().Reset(ctx, "Blind 75")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.Problems().Get(ctx, ps[0].ID)
	require.NoError(t, err)
	assert.True(t, got.IsNew())
	assert.Equal(t, problem.DefaultReviewState(), got.ReviewState)
	assert.Equal(t, "A", got.Name, "identity survives reset")

	kept, err := s.Problems().Get(ctx, custom.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsNew(), "other lists are untouched")

	events, err := s.Events().QueryEvents(ctx, EventQuery{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, custom.ID, events[0].ProblemID)
}

func TestCorruptDateFailsFast(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ps := seedBlind(t, s, "A")
	_, err := s.db.Exec("UPDATE problems SET next_review = 'tomorrow', times_solved = 1, interval_days = 1 WHERE id = ?", ps[0].ID)
	require.NoError(t, err)

	_, err = s.Problems().Get(ctx, ps[0].ID)
	assert.ErrorIs(t, err, ErrCorruptRow)

	_, err = s.Problems().FindAll(ctx, "")
	assert.ErrorIs(t, err, ErrCorruptRow)
}

func TestCorruptStateFailsFast(t *testing.T) {
	s := openTestStore(t)
	ps := seedBlind(t, s, "A")
	_, err := s.db.Exec("UPDATE problems SET ease_factor = 0.9 WHERE id = ?", ps[0].ID)
	require.NoError(t, err)

	_, err = s.Problems().Get(context.Background(), ps[0].ID)
	assert.ErrorIs(t, err, ErrCorruptRow)
	assert.ErrorIs(t, err, problem.ErrCorruptState)
}

func TestIsUniqueViolation(t *testing.T) {
	s := openTestStore(t)
	ps := seedBlind(t, s, "A")

	_, err := s.db.Exec("INSERT INTO problems (name, list, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)", "A", "Blind 75")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err), "duplicate (list, name)")

	_, err = s.db.Exec("INSERT INTO problems (id, name, list, created_at) VALUES (?, 'B', 'Blind 75', CURRENT_TIMESTAMP)", ps[0].ID)
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err), "duplicate primary key")

	_, err = s.db.Exec("INSERT INTO problems (name, list, created_at) VALUES (NULL, 'Blind 75', CURRENT_TIMESTAMP)")
	require.Error(t, err)
	assert.False(t, isUniqueViolation(err), "NOT NULL is not a duplicate")

	_, err = s.db.Exec("INSERT INTO review_events (id, sequence, quality, reviewed_on, recorded_at, interval_days, ease_factor, repetition, problem_id) "+
		"VALUES ('x', 99, 4, '2025-03-10', CURRENT_TIMESTAMP, 1, 2.5, 1, 404)")
	require.Error(t, err)
	assert.False(t, isUniqueViolation(err), "foreign key is not a duplicate")
}
