package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"macondo-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Postgres struct {
	db DBTX
}

func NewPostgres(db DBTX) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Insert(ctx context.Context, table string, rows ...Row) ([]Row, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := columnUnion(rows)
	if len(cols) == 0 {
		return nil, errs.Wrap(ErrInvalidQuery, "insert without columns")
	}

	var (
		sb   strings.Builder
		args []any
	)
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", ident(table), identList(cols))
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, c := range cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			v, ok := r[c]
			if !ok {
				sb.WriteString("DEFAULT")
				continue
			}
			args = append(args, v)
			fmt.Fprintf(&sb, "$%d", len(args))
		}
		sb.WriteByte(')')
	}
	sb.WriteString(" RETURNING *")

	return p.queryRows(ctx, sb.String(), args)
}

func (p *Postgres) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	if err := validateFilters(q.Filters); err != nil {
		return nil, err
	}

	var args []any
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", ident(table))
	if where := buildWhere(q.Filters, &args); where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	if len(q.Order) > 0 {
		parts := make([]string, len(q.Order))
		for i, o := range q.Order {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			parts[i] = ident(o.Field) + " " + dir
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(parts, ", "))
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}

	return p.queryRows(ctx, sb.String(), args)
}

func (p *Postgres) Update(ctx context.Context, table string, set Row, filters ...Filter) ([]Row, error) {
	if len(set) == 0 {
		return nil, errs.Wrap(ErrInvalidQuery, "update without columns")
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	cols := make([]string, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(set)+len(filters))
	assignments := make([]string, len(cols))
	for i, c := range cols {
		args = append(args, set[c])
		assignments[i] = fmt.Sprintf("%s = $%d", ident(c), len(args))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET %s", ident(table), strings.Join(assignments, ", "))
	if where := buildWhere(filters, &args); where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	sb.WriteString(" RETURNING *")

	return p.queryRows(ctx, sb.String(), args)
}

func (p *Postgres) Delete(ctx context.Context, table string, filters ...Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, errs.Wrap(ErrInvalidQuery, "delete without filters")
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}

	var args []any
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", ident(table), buildWhere(filters, &args))
	tag, err := p.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, translatePgError(err)
	}
	return tag.RowsAffected(), nil
}

func (p *Postgres) queryRows(ctx context.Context, sql string, args []any) ([]Row, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, translatePgError(err)
	}
	out := make([]Row, len(maps))
	for i, m := range maps {
		out[i] = Row(m)
	}
	return out, nil
}

func buildWhere(filters []Filter, args *[]any) string {
	if len(filters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		col := ident(f.Field)
		switch f.Op {
		case OpIsNull:
			parts = append(parts, col+" IS NULL")
		case OpNotNull:
			parts = append(parts, col+" IS NOT NULL")
		case OpEq:
			if f.Value == nil {
				parts = append(parts, col+" IS NULL")
				continue
			}
			*args = append(*args, f.Value)
			parts = append(parts, fmt.Sprintf("%s = $%d", col, len(*args)))
		case OpGte:
			*args = append(*args, f.Value)
			parts = append(parts, fmt.Sprintf("%s >= $%d", col, len(*args)))
		case OpIn:
			values := f.Value.([]any)
			if len(values) == 0 {
				parts = append(parts, "FALSE")
				continue
			}
			placeholders := make([]string, len(values))
			for i, v := range values {
				*args = append(*args, v)
				placeholders[i] = fmt.Sprintf("$%d", len(*args))
			}
			parts = append(parts, fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", ")))
		}
	}
	return strings.Join(parts, " AND ")
}

func columnUnion(rows []Row) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for c := range r {
			seen[c] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for c := range seen {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ident(n)
	}
	return strings.Join(out, ", ")
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return errs.Mark(err, ErrDuplicate)
	}
	return err
}
