// Package store is the record-level persistence contract used by every repository:
// insert returning rows, filtered select, conditional update returning the affected
// rows, and filtered delete. Postgres and an in-memory fake implement it.
package store

import (
	"context"

	"macondo-backend/internal/pkg/errs"
)

var (
	ErrDuplicate    = errs.New("duplicate key")
	ErrInvalidQuery = errs.New("invalid store query")
)

type Row map[string]any

// Clone returns a shallow copy so callers never alias store internals.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type Op string

const (
	OpEq      Op = "eq"
	OpIn      Op = "in"
	OpIsNull  Op = "is_null"
	OpNotNull Op = "not_null"
	OpGte     Op = "gte"
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

func In[T any](field string, values ...T) Filter {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Filter{Field: field, Op: OpIn, Value: vs}
}

func IsNull(field string) Filter {
	return Filter{Field: field, Op: OpIsNull}
}

func NotNull(field string) Filter {
	return Filter{Field: field, Op: OpNotNull}
}

func Gte(field string, value any) Filter {
	return Filter{Field: field, Op: OpGte, Value: value}
}

type Order struct {
	Field string
	Desc  bool
}

type Query struct {
	Filters []Filter
	Order   []Order
	Limit   int
}

func Where(filters ...Filter) Query {
	return Query{Filters: filters}
}

func (q Query) OrderBy(field string, desc bool) Query {
	q.Order = append(q.Order, Order{Field: field, Desc: desc})
	return q
}

func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

type Store interface {
	Insert(ctx context.Context, table string, rows ...Row) ([]Row, error)
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Update applies set to every row matching all filters and returns the rows it changed.
	// An empty result means the predicate no longer held.
	Update(ctx context.Context, table string, set Row, filters ...Filter) ([]Row, error)
	Delete(ctx context.Context, table string, filters ...Filter) (int64, error)
}

// Transactor runs fn so that either all of its writes land or none do.
type Transactor interface {
	Within(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

func validateFilters(filters []Filter) error {
	for _, f := range filters {
		if f.Field == "" {
			return errs.Wrap(ErrInvalidQuery, "filter field is empty")
		}
		switch f.Op {
		case OpEq, OpGte, OpIsNull, OpNotNull:
		case OpIn:
			if _, ok := f.Value.([]any); !ok {
				return errs.Wrapf(ErrInvalidQuery, "in filter on %s needs a list", f.Field)
			}
		default:
			return errs.Wrapf(ErrInvalidQuery, "unknown filter op %q", f.Op)
		}
	}
	return nil
}
