//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/infra/uow"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

// 21:30 in Warsaw
var eventNight = time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type env struct {
	uow   *uow.StoreUoW
	clock *clock.MockClock
	cfg   config.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()
	clk := clock.NewMockClock(eventNight)
	return &env{
		uow:   uow.NewMemoryUoW(clk, discardLogger()),
		clock: clk,
		cfg:   config.NewTestConfig(),
	}
}

func (e *env) seedTicket(t *testing.T, status ticket.Status, price int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.Issue{
		Buyer:     ticket.Buyer{Name: "Ana", Email: "ana@example.com"},
		EventName: "Dj Micke",
		PricePLN:  price,
		Status:    status,
		EventDate: "2026-03-14",
	}, ticket.Person{Name: "Luis", Email: "luis@example.com", Phone: "600100200"}, e.clock.Now())
	require.NoError(t, err)
	require.NoError(t, e.uow.Direct().Tickets().CreateBatch(context.Background(), []*ticket.Ticket{tk}))
	return tk
}

func (e *env) saveCover(t *testing.T, in cover.UpdateInput) {
	t.Helper()
	cfg, err := cover.NewConfig(in, e.clock.Now())
	require.NoError(t, err)
	require.NoError(t, e.uow.Direct().CoverConfig().Save(context.Background(), cfg))
}

func (e *env) reload(t *testing.T, tk *ticket.Ticket) *ticket.Ticket {
	t.Helper()
	got, err := e.uow.Direct().Tickets().FindByID(context.Background(), tk.ID())
	require.NoError(t, err)
	return got
}
