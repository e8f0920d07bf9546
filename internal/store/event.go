package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter stamps review events with a strictly increasing number.
// Review dates have day resolution, so two reviews on one day are ordered
// by their sequence instead.
type sequenceCounter struct {
	drv *entsql.Driver
}

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableGlobalSequence).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithIgnore(),
		).
		Query()
	if err := drv.Exec(ctx, q, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the next sequence number. The increment runs first so the
// transaction holds the write lock before it reads.
func (sc *sequenceCounter) Next(ctx context.Context) (seq int64, err error) {
	tx, err := sc.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin sequence: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	b := entsql.Dialect(dialect.SQLite)
	q, args := b.Update(tableGlobalSequence).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Query()
	if err = tx.Exec(ctx, q, args, nil); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}

	sel := b.Select("next_val").
		From(entsql.Table(tableGlobalSequence)).
		Where(entsql.EQ("id", 1))
	n, err := countRows(ctx, tx, sel)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}
	return int64(n) - 1, nil
}
