package session

import (
	"context"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
	"github.com/nasir-khan01/dsaprep/internal/config"
	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/selector"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

var day0 = civil.Date{Year: 2025, Month: 3, Day: 10}

type fixture struct {
	svc   *Service
	st    *store.Store
	today civil.Date
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := &fixture{st: st, today: day0}
	f.svc = New(FromStore(st), config.Default(), func() civil.Date { return f.today })
	return f
}

func testList(names ...string) catalog.List {
	l := catalog.List{Name: "Blind 75", Version: "v1.0.0"}
	for _, n := range names {
		l.Problems = append(l.Problems, catalog.Entry{Name: n, Pattern: "Trees", Difficulty: "Easy"})
	}
	return l
}

func (f *fixture) seed(t *testing.T, names ...string) []int {
	t.Helper()
	_, err := f.svc.Seed(context.Background(), testList(names...), "test", false)
	require.NoError(t, err)
	ps, err := f.st.Problems().FindAll(context.Background(), "Blind 75")
	require.NoError(t, err)
	ids := make([]int, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func TestRecordRejectsInvalidQualityWithoutStore(t *testing.T) {
	// Nil repositories would panic if touched.
	svc := New(Repos{}, config.Default(), func() civil.Date { return day0 })
	for _, q := range []spacedrep.Quality{-1, 6} {
		_, err := svc.Record(context.Background(), 1, q)
		assert.ErrorIs(t, err, spacedrep.ErrInvalidQuality)
	}
}

func TestRecordUnknownProblem(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "A")
	_, err := f.svc.Record(context.Background(), 999, spacedrep.Good)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordSchedulesAndLogs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seed(t, "Invert Binary Tree", "Same Tree")

	out, err := f.svc.Record(ctx, ids[0], spacedrep.Good)
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
	assert.True(t, out.Before.IsNew())
	assert.Equal(t, 1, out.After.TimesSolved)
	assert.Equal(t, day0.AddDays(1), out.Result.NextReview)
	assert.Equal(t, day0.AddDays(1), *out.After.NextReview)
	assert.Equal(t, spacedrep.Apply(out.Before.ReviewState, out.Result, day0), out.After.ReviewState,
		"stored state matches the in-memory projection")

	require.Len(t, out.Milestones, 1)
	assert.Equal(t, "solved:1", out.Milestones[0].Key())

	events, err := f.st.Events().QueryEvents(ctx, store.EventQuery{ProblemID: ids[0]})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, spacedrep.Good, events[0].Quality)
	assert.Equal(t, day0, events[0].ReviewedOn)

	// The first-solve milestone is announced once.
	f.today = day0.AddDays(1)
	out, err = f.svc.Record(ctx, ids[0], spacedrep.Perfect)
	require.NoError(t, err)
	assert.Empty(t, out.Milestones)
	assert.Equal(t, 6, out.Result.IntervalDays)
}

func TestRecordGroupCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seed(t, "A", "B")

	_, err := f.svc.Record(ctx, ids[0], spacedrep.Good)
	require.NoError(t, err)
	out, err := f.svc.Record(ctx, ids[1], spacedrep.Good)
	require.NoError(t, err)

	require.Len(t, out.Milestones, 1)
	assert.Equal(t, progress.Milestone{Kind: progress.KindGroup, Group: "Trees"}, out.Milestones[0])
}

func TestNextPrefersDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seed(t, "A", "B")

	sel, err := f.svc.Next(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, selector.New, sel.Kind)
	assert.Equal(t, ids[0], sel.Problem.ID)

	_, err = f.svc.Record(ctx, ids[1], spacedrep.Good)
	require.NoError(t, err)
	f.today = day0.AddDays(1)

	sel, err = f.svc.Next(ctx, "Blind 75")
	require.NoError(t, err)
	assert.Equal(t, selector.Due, sel.Kind)
	assert.Equal(t, ids[1], sel.Problem.ID)

	q, err := f.svc.Queue(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, q, 2)

	sel, err = f.svc.Next(ctx, "Grind 169")
	require.NoError(t, err)
	assert.False(t, sel.Found())
}

func TestDashboardStreakUsesHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seed(t, "A", "B", "C")

	for i := 0; i < 3; i++ {
		f.today = day0.AddDays(i)
		_, err := f.svc.Record(ctx, ids[0], spacedrep.Good)
		require.NoError(t, err)
	}

	d, err := f.svc.Dashboard(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Streak, "only the last review date survives in the pool")
	assert.Equal(t, progress.TierWarm, d.Tier)
	assert.Equal(t, 7, d.NextTier)
	assert.Equal(t, 3, d.Overall.Total)
	assert.Equal(t, 1, d.Overall.Started)
	assert.Equal(t, 3, d.Reviews.Total)
	assert.Equal(t, 3, d.Reviews.Recent)
	assert.Equal(t, 10, d.NextSolved)
	assert.Len(t, d.Activity, 7)
	require.Len(t, d.Groups, 1)
	assert.Equal(t, "Trees", d.Groups[0].Label)
}

func TestSeedVersionGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.svc.Seed(ctx, testList("A", "B"), "embedded", false)
	require.NoError(t, err)
	assert.False(t, out.Skipped)
	assert.Equal(t, 2, out.Inserted)

	out, err = f.svc.Seed(ctx, testList("A", "B", "C"), "embedded", false)
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Equal(t, "v1.0.0", out.Previous)

	out, err = f.svc.Seed(ctx, testList("A", "B", "C"), "embedded", true)
	require.NoError(t, err)
	assert.False(t, out.Skipped)
	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 2, out.Updated)

	newer := testList("A", "B", "C", "D")
	newer.Version = "v1.1.0"
	out, err = f.svc.Seed(ctx, newer, "embedded", false)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Inserted)

	meta, err := f.st.Lists().Get(ctx, "Blind 75")
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", meta.Version)
}

func TestResetAllowsMilestonesAgain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ids := f.seed(t, "A")
	_, err := f.st.Problems().Add(ctx, store.NewProblem{Name: "Mine", Pattern: "Graphs"})
	require.NoError(t, err)

	_, err = f.svc.Record(ctx, ids[0], spacedrep.Good)
	require.NoError(t, err)

	n, err := f.svc.Reset(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := f.svc.Record(ctx, ids[0], spacedrep.Good)
	require.NoError(t, err)
	require.NotEmpty(t, out.Milestones)
	assert.Equal(t, "solved:1", out.Milestones[0].Key())
}
