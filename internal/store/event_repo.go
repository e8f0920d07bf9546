package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
)

var eventColumns = []string{
	"id", "sequence", "problem_id", "quality", "reviewed_on", "recorded_at",
	"interval_days", "ease_factor", "repetition",
}

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) (ReviewEvent, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return ReviewEvent{}, fmt.Errorf("next sequence: %w", err)
	}

	ev := ReviewEvent{
		ID:           uuid.New(),
		Sequence:     seqNum,
		ProblemID:    data.ProblemID,
		Quality:      data.Quality,
		ReviewedOn:   data.ReviewedOn,
		RecordedAt:   time.Now().UTC(),
		IntervalDays: data.Result.IntervalDays,
		EaseFactor:   data.Result.EaseFactor,
		Repetition:   data.Result.Repetition,
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableReviewEvents).
		Columns(eventColumns...).
		Values(ev.ID.String(), ev.Sequence, ev.ProblemID, int(ev.Quality), ev.ReviewedOn.String(),
			ev.RecordedAt, ev.IntervalDays, ev.EaseFactor, ev.Repetition).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return ReviewEvent{}, fmt.Errorf("save review event: %w", err)
	}
	return ev, nil
}

func (r *eventRepo) QueryEvents(ctx context.Context, opts EventQuery) ([]ReviewEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(eventColumns...).
		From(entsql.Table(tableReviewEvents)).
		OrderBy(entsql.Desc("sequence"))

	if opts.ProblemID > 0 {
		sel.Where(entsql.EQ("problem_id", opts.ProblemID))
	}
	if !opts.Since.IsZero() {
		sel.Where(entsql.GTE("reviewed_on", opts.Since.String()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	var out []ReviewEvent
	for rows.Next() {
		var (
			ev      ReviewEvent
			id, day string
			quality int
		)
		err := rows.Scan(&id, &ev.Sequence, &ev.ProblemID, &quality, &day, &ev.RecordedAt,
			&ev.IntervalDays, &ev.EaseFactor, &ev.Repetition)
		if err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		if ev.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: review event id %q: %w", ErrCorruptRow, id, err)
		}
		if ev.ReviewedOn, err = civil.ParseDate(day); err != nil {
			return nil, fmt.Errorf("%w: review event %s date %q: %w", ErrCorruptRow, id, day, err)
		}
		ev.Quality = spacedrep.Quality(quality)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) ReviewSummary(ctx context.Context, since civil.Date) (ReviewSummary, error) {
	var sum ReviewSummary

	sel := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*"), entsql.Avg("quality")).
		From(entsql.Table(tableReviewEvents))
	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return sum, fmt.Errorf("summarize reviews: %w", err)
	}
	var avg sql.NullFloat64
	if rows.Next() {
		if err := rows.Scan(&sum.Total, &avg); err != nil {
			rows.Close()
			return sum, fmt.Errorf("summarize reviews: %w", err)
		}
	}
	rows.Close()
	sum.AverageQuality = avg.Float64

	recent := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(tableReviewEvents)).
		Where(entsql.GTE("reviewed_on", since.String()))
	n, err := countRows(ctx, r.drv, recent)
	if err != nil {
		return sum, fmt.Errorf("summarize reviews: %w", err)
	}
	sum.Recent = n
	return sum, nil
}
