//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("first scan admits and records the staff member", func(t *testing.T) {
		e := newEnv(t)
		tk := e.seedTicket(t, ticket.StatusPaid, 30)
		cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

		res, err := cmds.Redeem(ctx, " "+tk.QRToken()+" ", "door1")
		require.NoError(t, err)
		assert.False(t, res.Grace)
		assert.Equal(t, "door1", res.UsedBy)
		assert.Equal(t, eventNight, res.UsedAt)
		assert.Equal(t, "Luis", res.PersonName)

		stored := e.reload(t, tk)
		require.NotNil(t, stored.UsedAt())
		assert.Equal(t, "door1", *stored.UsedBy())
	})

	t.Run("repeat scan inside the grace window succeeds without a write", func(t *testing.T) {
		e := newEnv(t)
		tk := e.seedTicket(t, ticket.StatusManual, 0)
		cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

		_, err := cmds.Redeem(ctx, tk.QRToken(), "door1")
		require.NoError(t, err)

		e.clock.Add(4 * time.Minute)
		res, err := cmds.Redeem(ctx, tk.QRToken(), "door2")
		require.NoError(t, err)
		assert.True(t, res.Grace)
		assert.Equal(t, "door1", res.UsedBy)
		assert.Equal(t, eventNight, res.UsedAt)
	})

	t.Run("scan after the grace window is refused with the original admission", func(t *testing.T) {
		e := newEnv(t)
		tk := e.seedTicket(t, ticket.StatusPaid, 30)
		cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

		_, err := cmds.Redeem(ctx, tk.QRToken(), "door1")
		require.NoError(t, err)

		e.clock.Add(6 * time.Minute)
		_, err = cmds.Redeem(ctx, tk.QRToken(), "door2")

		var used *ticket.AlreadyUsedError
		require.True(t, errs.As(err, &used))
		assert.Equal(t, "door1", used.UsedBy)
		assert.True(t, used.UsedAt.Equal(eventNight))
	})

	t.Run("inactive statuses are refused and nothing is written", func(t *testing.T) {
		for _, st := range []ticket.Status{ticket.StatusDisabled, ticket.StatusManualPending, ticket.StatusPrivatePending} {
			e := newEnv(t)
			tk := e.seedTicket(t, st, 0)
			cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

			_, err := cmds.Redeem(ctx, tk.QRToken(), "door1")
			assert.True(t, errs.Is(err, errs.ErrNotActive), st)
			assert.Nil(t, e.reload(t, tk).UsedAt())
		}
	})

	t.Run("unknown and missing tokens", func(t *testing.T) {
		e := newEnv(t)
		cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

		_, err := cmds.Redeem(ctx, "nope", "door1")
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		_, err = cmds.Redeem(ctx, "   ", "door1")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestRedeemConcurrentScansHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	tk := e.seedTicket(t, ticket.StatusPaid, 30)
	cmds := commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger())

	const scanners = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		start   = make(chan struct{})
	)
	for i := range scanners {
		wg.Add(1)
		go func(door string) {
			defer wg.Done()
			<-start
			res, err := cmds.Redeem(ctx, tk.QRToken(), door)
			if err != nil {
				// losers either see the grace admission or the winner's details
				assert.True(t, errs.Is(err, errs.ErrAlreadyUsed), err)
				return
			}
			if !res.Grace {
				mu.Lock()
				winners = append(winners, door)
				mu.Unlock()
			}
		}(fmt.Sprintf("door%d", i))
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1)
	stored := e.reload(t, tk)
	require.NotNil(t, stored.UsedBy())
	assert.Equal(t, winners[0], *stored.UsedBy())
}
