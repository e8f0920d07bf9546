package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
)

type problemRepo struct {
	drv *entsql.Driver
}

func (r *problemRepo) Find(ctx context.Context, q Query) ([]problem.Problem, error) {
	sel, err := q.findSelector()
	if err != nil {
		return nil, err
	}
	return queryProblems(ctx, r.drv, sel)
}

func (r *problemRepo) Count(ctx context.Context, q Query) (int, error) {
	sel, err := q.countSelector()
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.drv, sel)
}

func (r *problemRepo) FindDue(ctx context.Context, list string, today civil.Date) ([]problem.Problem, error) {
	return r.Find(ctx, Query{List: list, Filter: FilterDue, Today: today, Order: OrderNextReview})
}

func (r *problemRepo) FindNew(ctx context.Context, list string) ([]problem.Problem, error) {
	return r.Find(ctx, Query{List: list, Filter: FilterNew, Order: OrderID})
}

func (r *problemRepo) FindAll(ctx context.Context, list string) ([]problem.Problem, error) {
	return r.Find(ctx, Query{List: list})
}

func (r *problemRepo) Get(ctx context.Context, id int) (problem.Problem, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(problemColumns...).
		From(entsql.Table(tableProblems)).
		Where(entsql.EQ(colID, id)).
		Limit(1)
	ps, err := queryProblems(ctx, r.drv, sel)
	if err != nil {
		return problem.Problem{}, err
	}
	if len(ps) == 0 {
		return problem.Problem{}, fmt.Errorf("%w: problem %d", ErrNotFound, id)
	}
	return ps[0], nil
}

func (r *problemRepo) WriteReview(ctx context.Context, id int, res spacedrep.Result, today civil.Date) (problem.Problem, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Update(tableProblems).
		Set(colRepetition, res.Repetition).
		Set(colEaseFactor, res.EaseFactor).
		Set(colIntervalDays, res.IntervalDays).
		Set(colNextReview, res.NextReview.String()).
		Set(colLastReviewed, today.String()).
		Add(colTimesSolved, 1).
		Where(entsql.EQ(colID, id)).
		Query()

	var result sql.Result
	if err := r.drv.Exec(ctx, q, args, &result); err != nil {
		return problem.Problem{}, fmt.Errorf("write review %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return problem.Problem{}, fmt.Errorf("write review %d: %w", id, err)
	}
	if n == 0 {
		return problem.Problem{}, fmt.Errorf("%w: problem %d", ErrNotFound, id)
	}
	return r.Get(ctx, id)
}

func (r *problemRepo) Lists(ctx context.Context) ([]string, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(colList).
		Distinct().
		From(entsql.Table(tableProblems)).
		OrderBy(entsql.Asc(colList))
	return queryStrings(ctx, r.drv, sel)
}

func (r *problemRepo) Patterns(ctx context.Context, list string) ([]string, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(colPattern).
		Distinct().
		From(entsql.Table(tableProblems)).
		OrderBy(entsql.Asc(colPattern))
	if list != "" {
		sel.Where(entsql.EQ(colList, list))
	}
	return queryStrings(ctx, r.drv, sel)
}

func (r *problemRepo) Add(ctx context.Context, np NewProblem) (problem.Problem, error) {
	np = np.withDefaults(np.List)
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(tableProblems).
		Columns(colName, colURL, colCategory, colDifficulty, colPattern, colList, colCreatedAt).
		Values(np.Name, np.URL, np.Category, np.Difficulty, np.Pattern, np.List, time.Now().UTC()).
		Query()

	var result sql.Result
	if err := r.drv.Exec(ctx, q, args, &result); err != nil {
		if isUniqueViolation(err) {
			return problem.Problem{}, fmt.Errorf("%w: %q in %q", ErrDuplicate, np.Name, np.List)
		}
		return problem.Problem{}, fmt.Errorf("add problem: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return problem.Problem{}, fmt.Errorf("add problem: %w", err)
	}
	return r.Get(ctx, int(id))
}

func (r *problemRepo) Seed(ctx context.Context, list string, items []NewProblem) (res SeedResult, err error) {
	if list == "" {
		list = problem.DefaultList
	}
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return res, fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	inList := Query{List: list}
	before, err := countQuery(ctx, tx, inList)
	if err != nil {
		return res, err
	}

	now := time.Now().UTC()
	for _, item := range items {
		np := item.withDefaults(list)
		q, args := entsql.Dialect(dialect.SQLite).
			Insert(tableProblems).
			Columns(colName, colURL, colCategory, colDifficulty, colPattern, colList, colCreatedAt).
			Values(np.Name, np.URL, np.Category, np.Difficulty, np.Pattern, np.List, now).
			OnConflict(
				entsql.ConflictColumns(colList, colName),
				entsql.ResolveWith(func(u *entsql.UpdateSet) {
					u.SetExcluded(colURL)
					u.SetExcluded(colCategory)
					u.SetExcluded(colDifficulty)
					u.SetExcluded(colPattern)
				}),
			).
			Query()
		if err = tx.Exec(ctx, q, args, nil); err != nil {
			return res, fmt.Errorf("seed %q: %w", np.Name, err)
		}
	}

	after, err := countQuery(ctx, tx, inList)
	if err != nil {
		return res, err
	}
	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("commit seed: %w", err)
	}

	res.Inserted = after - before
	res.Updated = len(items) - res.Inserted
	return res, nil
}

func (r *problemRepo) Reset(ctx context.Context, list string) (n int, err error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin reset: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	del := entsql.Dialect(dialect.SQLite).Delete(tableReviewEvents)
	upd := entsql.Dialect(dialect.SQLite).
		Update(tableProblems).
		Set(colRepetition, 0).
		Set(colEaseFactor, problem.DefaultEaseFactor).
		Set(colIntervalDays, 0).
		SetNull(colNextReview).
		SetNull(colLastReviewed).
		Set(colTimesSolved, 0)
	if list != "" {
		ids := entsql.Dialect(dialect.SQLite).
			Select(colID).
			From(entsql.Table(tableProblems)).
			Where(entsql.EQ(colList, list))
		del.Where(entsql.In("problem_id", ids))
		upd.Where(entsql.EQ(colList, list))
	}

	q, args := del.Query()
	if err = tx.Exec(ctx, q, args, nil); err != nil {
		return 0, fmt.Errorf("delete review events: %w", err)
	}

	var result sql.Result
	q, args = upd.Query()
	if err = tx.Exec(ctx, q, args, &result); err != nil {
		return 0, fmt.Errorf("reset problems: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset problems: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset: %w", err)
	}
	return int(affected), nil
}

func (np NewProblem) withDefaults(list string) NewProblem {
	if list == "" {
		list = problem.DefaultList
	}
	np.List = list
	if np.Pattern == "" {
		np.Pattern = problem.DefaultPattern
	}
	if np.Category == "" {
		np.Category = np.Pattern
	}
	if np.Difficulty == "" {
		np.Difficulty = "Medium"
	}
	return np
}

func queryProblems(ctx context.Context, eq dialect.ExecQuerier, sel *entsql.Selector) ([]problem.Problem, error) {
	q, args := sel.Query()
	var rows entsql.Rows
	if err := eq.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var out []problem.Problem
	for rows.Next() {
		p, err := scanProblem(&rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	return out, nil
}

func scanProblem(rows *entsql.Rows) (problem.Problem, error) {
	var (
		p          problem.Problem
		next, last sql.NullString
	)
	err := rows.Scan(
		&p.ID, &p.Name, &p.URL, &p.Category, &p.Difficulty, &p.Pattern, &p.List,
		&p.Repetition, &p.EaseFactor, &p.IntervalDays, &next, &last, &p.TimesSolved,
	)
	if err != nil {
		return p, fmt.Errorf("scan problem: %w", err)
	}
	if p.NextReview, err = parseDate(next, p.ID, colNextReview); err != nil {
		return p, err
	}
	if p.LastReviewed, err = parseDate(last, p.ID, colLastReviewed); err != nil {
		return p, err
	}
	if err := p.ReviewState.Validate(); err != nil {
		return p, fmt.Errorf("%w: problem %d: %w", ErrCorruptRow, p.ID, err)
	}
	return p, nil
}

// parseDate decodes a nullable ISO date column.
func parseDate(ns sql.NullString, id int, col string) (*civil.Date, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := civil.ParseDate(ns.String)
	if err != nil {
		return nil, fmt.Errorf("%w: problem %d %s %q: %w", ErrCorruptRow, id, col, ns.String, err)
	}
	return &d, nil
}

func queryStrings(ctx context.Context, eq dialect.ExecQuerier, sel *entsql.Selector) ([]string, error) {
	q, args := sel.Query()
	var rows entsql.Rows
	if err := eq.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func countRows(ctx context.Context, eq dialect.ExecQuerier, sel *entsql.Selector) (int, error) {
	q, args := sel.Query()
	var rows entsql.Rows
	if err := eq.Query(ctx, q, args, &rows); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("count: %w", err)
		}
	}
	return n, rows.Err()
}

func countQuery(ctx context.Context, eq dialect.ExecQuerier, q Query) (int, error) {
	sel, err := q.countSelector()
	if err != nil {
		return 0, err
	}
	return countRows(ctx, eq, sel)
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
