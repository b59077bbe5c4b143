//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/infra/uow"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 00:30 on the 15th in Warsaw, still the 14th in UTC
var afterMidnight = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

func seed(t *testing.T, u *uow.StoreUoW, date, name string, status ticket.Status, at time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.Issue{
		Buyer:     ticket.Buyer{Name: "Ana", Email: "ana@example.com"},
		EventName: "Dj Micke",
		PricePLN:  30,
		Status:    status,
		EventDate: date,
	}, ticket.Person{Name: name, Email: name + "@example.com", Phone: "600100200"}, at)
	require.NoError(t, err)
	require.NoError(t, u.Direct().Tickets().CreateBatch(context.Background(), []*ticket.Ticket{tk}))
	return tk
}

func newTicketQueries(t *testing.T) (queries.TicketQueries, *uow.StoreUoW) {
	t.Helper()
	clk := clock.NewMockClock(afterMidnight)
	u := uow.NewMemoryUoW(clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return queries.NewTicketQueries(u, clk, config.NewTestConfig()), u
}

func TestListToday(t *testing.T) {
	q, u := newTicketQueries(t)
	ctx := context.Background()

	first := seed(t, u, "2026-03-15", "luis", ticket.StatusPaid, afterMidnight.Add(-time.Hour))
	second := seed(t, u, "2026-03-15", "marta", ticket.StatusManual, afterMidnight)
	seed(t, u, "2026-03-14", "pablo", ticket.StatusPaid, afterMidnight)

	got, err := q.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID(), got[0].ID, "newest first")
	assert.Equal(t, first.ID(), got[1].ID)
}

func TestListTickets(t *testing.T) {
	q, u := newTicketQueries(t)
	ctx := context.Background()

	used := seed(t, u, "2026-03-15", "luis", ticket.StatusPaid, afterMidnight)
	won, err := u.Direct().Tickets().MarkUsed(ctx, used.ID(), afterMidnight, "door1")
	require.NoError(t, err)
	require.True(t, won)
	seed(t, u, "2026-03-15", "marta", ticket.StatusManual, afterMidnight)
	seed(t, u, "2026-03-15", "pablo", ticket.StatusDisabled, afterMidnight)

	t.Run("used means redeemed regardless of status", func(t *testing.T) {
		got, err := q.List(ctx, queries.TicketFilters{Status: "USED"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, used.ID(), got[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := q.List(ctx, queries.TicketFilters{Status: "disabled"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "pablo", got[0].PersonName)
	})

	t.Run("free text matches names and emails case insensitively", func(t *testing.T) {
		got, err := q.List(ctx, queries.TicketFilters{Q: "MARTA@"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "marta", got[0].PersonName)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := q.List(ctx, queries.TicketFilters{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestGetByToken(t *testing.T) {
	q, u := newTicketQueries(t)
	ctx := context.Background()
	tk := seed(t, u, "2026-03-15", "luis", ticket.StatusPaid, afterMidnight)

	got, err := q.GetByToken(ctx, " "+tk.QRToken()+" ")
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), got.ID())

	_, err = q.GetByToken(ctx, "")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = q.GetByToken(ctx, "nope")
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
	assert.Equal(t, 42, queries.ValidateLimit(42))
}
