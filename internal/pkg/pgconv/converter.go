package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Row values come back from pgx.RowToMap as driver-native types (uuid as [16]byte,
// date as time.Time) and from the in-memory store as whatever was inserted.
// These helpers read both shapes.

func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case [16]byte:
		return uuid.UUID(t).String()
	case uuid.UUID:
		return t.String()
	case pgtype.UUID:
		if !t.Valid {
			return ""
		}
		return uuid.UUID(t.Bytes).String()
	case pgtype.Text:
		return t.String
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func StringPtr(v any) *string {
	if v == nil {
		return nil
	}
	if t, ok := v.(pgtype.Text); ok && !t.Valid {
		return nil
	}
	s := String(v)
	return &s
}

func UUID(v any) uuid.UUID {
	switch t := v.(type) {
	case [16]byte:
		return uuid.UUID(t)
	case uuid.UUID:
		return t
	case pgtype.UUID:
		return uuid.UUID(t.Bytes)
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil
		}
		return id
	default:
		return uuid.Nil
	}
}

// Date renders a calendar day column as YYYY-MM-DD.
func Date(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.DateOnly)
	case pgtype.Date:
		if !t.Valid {
			return ""
		}
		return t.Time.Format(time.DateOnly)
	default:
		return String(v)
	}
}

func Time(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case pgtype.Timestamptz:
		return t.Time
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}

func TimePtr(v any) *time.Time {
	if v == nil {
		return nil
	}
	if t, ok := v.(pgtype.Timestamptz); ok && !t.Valid {
		return nil
	}
	tm := Time(v)
	if tm.IsZero() {
		return nil
	}
	return &tm
}

func Int64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
