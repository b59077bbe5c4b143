//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	DefaultAdminPassword = "password123"
	DefaultStaffPIN      = "2468"
)

// SeedAdmin puts email on the admin allow-list with DefaultAdminPassword.
func SeedAdmin(t *testing.T, db DBLike, email string) {
	t.Helper()

	hash, err := password.Hash(DefaultAdminPassword)
	require.NoError(t, err)
	_, err = db.Exec(context.Background(),
		"INSERT INTO admins (email, password_hash) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING",
		email, hash)
	require.NoError(t, err)
}

// SeedStaff creates an active door account with DefaultStaffPIN.
func SeedStaff(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	hash, err := password.Hash(DefaultStaffPIN)
	require.NoError(t, err)

	id := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO staff_users (id, username, pin_hash, active) VALUES ($1, $2, $3, true) ON CONFLICT (username) DO NOTHING",
		id, username, hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff_users WHERE username = $1", username).Scan(&id)
	}
	return id
}

type TicketSeed struct {
	PersonName string
	Status     ticket.Status
	PricePLN   int64
	EventDate  string
	UsedAt     *time.Time
	UsedBy     *string
}

// SeedTicket inserts one ticket and returns its id and QR token.
func SeedTicket(t *testing.T, db DBLike, in TicketSeed) (uuid.UUID, string) {
	t.Helper()

	if in.PersonName == "" {
		in.PersonName = "Luis"
	}
	if in.Status == "" {
		in.Status = ticket.StatusPaid
	}
	if in.EventDate == "" {
		in.EventDate = time.Now().Format(time.DateOnly)
	}
	token, err := ticket.GenerateToken()
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(), `
		INSERT INTO cover_tickets (id, buyer_name, buyer_email, person_name, person_email, person_phone,
		                           dj_name, price_pln, status, event_date, qr_token, used_at, used_by)
		VALUES ($1, 'Ana', 'ana@example.com', $2, $3, '600100200', 'Dj Micke', $4, $5, $6, $7, $8, $9)`,
		id, in.PersonName, strings.ToLower(in.PersonName)+"@example.com", in.PricePLN, in.Status.String(),
		in.EventDate, token, in.UsedAt, in.UsedBy)
	require.NoError(t, err)
	return id, token
}

// SeedReservation inserts a pending or confirmed booking on tableID.
func SeedReservation(t *testing.T, db DBLike, date, entry, tableID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, name, email, date, entry_time, party_size, table_id, status)
		VALUES ($1, 'Seeded', 'seeded@example.com', $2, $3, 2, $4, $5)`,
		id, date, entry, tableID, status)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cover_config (dj_name, price_pln, active, mode)
		VALUES ('Dj Micke', 30, true, 'dj');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
