package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var listMetaColumns = []string{"name", "version", "source", "imported_at"}

type listRepo struct {
	drv *entsql.Driver
}

func (r *listRepo) Get(ctx context.Context, name string) (ListMeta, error) {
	metas, err := r.query(ctx, entsql.EQ("name", name))
	if err != nil {
		return ListMeta{}, err
	}
	if len(metas) == 0 {
		return ListMeta{}, fmt.Errorf("%w: list %q", ErrNotFound, name)
	}
	return metas[0], nil
}

func (r *listRepo) Put(ctx context.Context, meta ListMeta) error {
	if meta.ImportedAt.IsZero() {
		meta.ImportedAt = time.Now().UTC()
	}
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableListMeta).
		Columns(listMetaColumns...).
		Values(meta.Name, meta.Version, meta.Source, meta.ImportedAt).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save list meta %q: %w", meta.Name, err)
	}
	return nil
}

func (r *listRepo) All(ctx context.Context) ([]ListMeta, error) {
	return r.query(ctx, nil)
}

func (r *listRepo) query(ctx context.Context, pred *entsql.Predicate) ([]ListMeta, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(listMetaColumns...).
		From(entsql.Table(tableListMeta)).
		OrderBy(entsql.Asc("name"))
	if pred != nil {
		sel.Where(pred)
	}

	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query list meta: %w", err)
	}
	defer rows.Close()

	var out []ListMeta
	for rows.Next() {
		var m ListMeta
		if err := rows.Scan(&m.Name, &m.Version, &m.Source, &m.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan list meta: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
