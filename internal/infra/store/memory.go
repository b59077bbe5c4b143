package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"macondo-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// Memory is a process-local Store. Every operation holds one mutex, so a
// conditional Update is atomic with respect to concurrent callers in the same
// way a single UPDATE statement is in Postgres.
type Memory struct {
	mu      sync.Mutex
	tables  map[string][]Row
	uniques map[string][][]string
}

func NewMemory() *Memory {
	return &Memory{
		tables:  make(map[string][]Row),
		uniques: make(map[string][][]string),
	}
}

// WithUnique declares a unique key over columns, mirroring a unique index.
func (m *Memory) WithUnique(table string, columns ...string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uniques[table] = append(m.uniques[table], columns)
	return m
}

func (m *Memory) Insert(ctx context.Context, table string, rows ...Row) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(table, rows)
}

func (m *Memory) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectLocked(table, q)
}

func (m *Memory) Update(ctx context.Context, table string, set Row, filters ...Filter) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateLocked(table, set, filters)
}

func (m *Memory) Delete(ctx context.Context, table string, filters ...Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteLocked(table, filters)
}

// Within holds the store lock for the whole callback and restores the previous
// contents when fn fails.
func (m *Memory) Within(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.snapshotLocked()
	if err := fn(ctx, &memoryTx{m: m}); err != nil {
		m.tables = snapshot
		return err
	}
	return nil
}

func (m *Memory) insertLocked(table string, rows []Row) ([]Row, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	existing := m.tables[table]
	staged := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := r.Clone()
		if err := m.checkUniqueLocked(table, row, existing, staged); err != nil {
			return nil, err
		}
		staged = append(staged, row)
	}

	m.tables[table] = append(existing, staged...)

	out := make([]Row, len(staged))
	for i, r := range staged {
		out[i] = r.Clone()
	}
	return out, nil
}

func (m *Memory) selectLocked(table string, q Query) ([]Row, error) {
	if err := validateFilters(q.Filters); err != nil {
		return nil, err
	}
	var out []Row
	for _, r := range m.tables[table] {
		if matchesAll(r, q.Filters) {
			out = append(out, r.Clone())
		}
	}

	if len(q.Order) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.Order {
				c := compareForSort(out[i][o.Field], out[j][o.Field])
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *Memory) updateLocked(table string, set Row, filters []Filter) ([]Row, error) {
	if len(set) == 0 {
		return nil, errs.Wrap(ErrInvalidQuery, "update without columns")
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	rows := m.tables[table]
	var changed []int
	for i, r := range rows {
		if matchesAll(r, filters) {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil, nil
	}

	for _, i := range changed {
		candidate := rows[i].Clone()
		for k, v := range set {
			candidate[k] = v
		}
		others := make([]Row, 0, len(rows)-1)
		others = append(others, rows[:i]...)
		others = append(others, rows[i+1:]...)
		if err := m.checkUniqueLocked(table, candidate, others, nil); err != nil {
			return nil, err
		}
	}

	out := make([]Row, 0, len(changed))
	for _, i := range changed {
		for k, v := range set {
			rows[i][k] = v
		}
		out = append(out, rows[i].Clone())
	}
	return out, nil
}

func (m *Memory) deleteLocked(table string, filters []Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, errs.Wrap(ErrInvalidQuery, "delete without filters")
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}

	rows := m.tables[table]
	kept := rows[:0:0]
	var removed int64
	for _, r := range rows {
		if matchesAll(r, filters) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	m.tables[table] = kept
	return removed, nil
}

func (m *Memory) checkUniqueLocked(table string, row Row, groups ...[]Row) error {
	for _, cols := range m.uniques[table] {
		for _, group := range groups {
			for _, other := range group {
				if sameKey(row, other, cols) {
					return errs.Wrapf(ErrDuplicate, "%s(%s)", table, strings.Join(cols, ","))
				}
			}
		}
	}
	return nil
}

func (m *Memory) snapshotLocked() map[string][]Row {
	snap := make(map[string][]Row, len(m.tables))
	for name, rows := range m.tables {
		cp := make([]Row, len(rows))
		for i, r := range rows {
			cp[i] = r.Clone()
		}
		snap[name] = cp
	}
	return snap
}

// memoryTx is the Store handed to Within callbacks; the lock is already held.
type memoryTx struct {
	m *Memory
}

func (t *memoryTx) Insert(ctx context.Context, table string, rows ...Row) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.m.insertLocked(table, rows)
}

func (t *memoryTx) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.m.selectLocked(table, q)
}

func (t *memoryTx) Update(ctx context.Context, table string, set Row, filters ...Filter) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.m.updateLocked(table, set, filters)
}

func (t *memoryTx) Delete(ctx context.Context, table string, filters ...Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return t.m.deleteLocked(table, filters)
}

func (t *memoryTx) Within(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, t)
}

func sameKey(a, b Row, cols []string) bool {
	for _, c := range cols {
		av, bv := a[c], b[c]
		// NULLs never collide, as in a SQL unique index
		if av == nil || bv == nil {
			return false
		}
		if cmp, ok := compareValues(av, bv); !ok || cmp != 0 {
			return false
		}
	}
	return true
}

func matchesAll(r Row, filters []Filter) bool {
	for _, f := range filters {
		if !matches(r, f) {
			return false
		}
	}
	return true
}

func matches(r Row, f Filter) bool {
	v, present := r[f.Field]
	isNull := !present || v == nil
	switch f.Op {
	case OpIsNull:
		return isNull
	case OpNotNull:
		return !isNull
	case OpEq:
		if f.Value == nil {
			return isNull
		}
		if isNull {
			return false
		}
		c, ok := compareValues(v, f.Value)
		return ok && c == 0
	case OpGte:
		if isNull || f.Value == nil {
			return false
		}
		c, ok := compareValues(v, f.Value)
		return ok && c >= 0
	case OpIn:
		if isNull {
			return false
		}
		for _, candidate := range f.Value.([]any) {
			if c, ok := compareValues(v, candidate); ok && c == 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint32:
		return int64(t)
	case float32:
		return float64(t)
	case uuid.UUID:
		return t.String()
	case [16]byte:
		return uuid.UUID(t).String()
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return *t
	default:
		return underlying(v)
	}
}

// underlying unwraps named types such as `type Status string`.
func underlying(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	default:
		return v
	}
}

// compareValues orders two values of compatible kinds. ok is false when the
// kinds cannot be compared, which makes the filter reject the row.
func compareValues(a, b any) (int, bool) {
	a, b = normalize(a), normalize(b)
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case int64:
		switch bv := b.(type) {
		case int64:
			return cmpOrdered(av, bv), true
		case float64:
			return cmpOrdered(float64(av), bv), true
		}
	case float64:
		switch bv := b.(type) {
		case float64:
			return cmpOrdered(av, bv), true
		case int64:
			return cmpOrdered(av, float64(bv)), true
		}
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		default:
			return 1, true
		}
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	}
	return 0, false
}

// compareForSort puts NULLs last, matching the Postgres default for ASC.
func compareForSort(a, b any) int {
	a, b = normalize(a), normalize(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c, _ := compareValues(a, b)
	return c
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
