package store

import (
	"fmt"

	"cloud.google.com/go/civil"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Filter selects problems by review status.
type Filter int

const (
	FilterAll     Filter = iota
	FilterDue            // next_review <= Today
	FilterNew            // never reviewed
	FilterOverdue        // next_review < Today
	FilterStarted        // times_solved > 0
)

func (f Filter) String() string {
	switch f {
	case FilterDue:
		return "due"
	case FilterNew:
		return "new"
	case FilterOverdue:
		return "overdue"
	case FilterStarted:
		return "started"
	default:
		return "all"
	}
}

// Order sets the result order. Every order ends with the problem ID so
// results are deterministic.
type Order int

const (
	OrderID Order = iota
	OrderNextReview
	OrderPattern
)

// Query describes one read of the problems table.
type Query struct {
	List    string     // "" = all lists
	Pattern string     // "" = all patterns
	Filter  Filter     // FilterAll keeps every row
	Today   civil.Date // required by FilterDue and FilterOverdue
	Order   Order      // OrderID by default
	Limit   int        // 0 = unlimited
}

func (q Query) predicate() (*entsql.Predicate, error) {
	var preds []*entsql.Predicate
	if q.List != "" {
		preds = append(preds, entsql.EQ(colList, q.List))
	}
	if q.Pattern != "" {
		preds = append(preds, entsql.EQ(colPattern, q.Pattern))
	}

	switch q.Filter {
	case FilterAll:
	case FilterNew:
		preds = append(preds, entsql.IsNull(colNextReview))
	case FilterStarted:
		preds = append(preds, entsql.GT(colTimesSolved, 0))
	case FilterDue, FilterOverdue:
		if q.Today.IsZero() {
			return nil, fmt.Errorf("%w: %s filter needs a date", ErrInvalidQuery, q.Filter)
		}
		preds = append(preds, entsql.NotNull(colNextReview))
		if q.Filter == FilterDue {
			preds = append(preds, entsql.LTE(colNextReview, q.Today.String()))
		} else {
			preds = append(preds, entsql.LT(colNextReview, q.Today.String()))
		}
	default:
		return nil, fmt.Errorf("%w: unknown filter %d", ErrInvalidQuery, int(q.Filter))
	}

	if len(preds) == 0 {
		return nil, nil
	}
	return entsql.And(preds...), nil
}

func (q Query) orderBy() []string {
	switch q.Order {
	case OrderNextReview:
		return []string{entsql.Asc(colNextReview), entsql.Asc(colID)}
	case OrderPattern:
		return []string{entsql.Asc(colPattern), entsql.Asc(colID)}
	default:
		return []string{entsql.Asc(colID)}
	}
}

// selector builds the SELECT for q over the given columns.
func (q Query) selector(columns ...string) (*entsql.Selector, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidQuery, q.Limit)
	}
	pred, err := q.predicate()
	if err != nil {
		return nil, err
	}
	sel := entsql.Dialect(dialect.SQLite).
		Select(columns...).
		From(entsql.Table(tableProblems))
	if pred != nil {
		sel.Where(pred)
	}
	return sel, nil
}

func (q Query) findSelector() (*entsql.Selector, error) {
	sel, err := q.selector(problemColumns...)
	if err != nil {
		return nil, err
	}
	sel.OrderBy(q.orderBy()...)
	if q.Limit > 0 {
		sel.Limit(q.Limit)
	}
	return sel, nil
}

func (q Query) countSelector() (*entsql.Selector, error) {
	return q.selector(entsql.Count("*"))
}
