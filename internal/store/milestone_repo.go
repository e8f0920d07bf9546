package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type milestoneRepo struct {
	drv *entsql.Driver
}

func (r *milestoneRepo) Acknowledged(ctx context.Context) (map[string]bool, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("milestone_key").
		From(entsql.Table(tableMilestoneAcks))
	keys, err := queryStrings(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("load milestone acks: %w", err)
	}
	acked := make(map[string]bool, len(keys))
	for _, k := range keys {
		acked[k] = true
	}
	return acked, nil
}

func (r *milestoneRepo) Acknowledge(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	now := time.Now().UTC()
	ins := entsql.Dialect(dialect.SQLite).
		Insert(tableMilestoneAcks).
		Columns("milestone_key", "acknowledged_at")
	for _, k := range keys {
		ins.Values(k, now)
	}
	q, args := ins.
		OnConflict(
			entsql.ConflictColumns("milestone_key"),
			entsql.ResolveWithIgnore(),
		).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("acknowledge milestones: %w", err)
	}
	return nil
}

func (r *milestoneRepo) Clear(ctx context.Context) error {
	q, args := entsql.Dialect(dialect.SQLite).Delete(tableMilestoneAcks).Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("clear milestone acks: %w", err)
	}
	return nil
}
