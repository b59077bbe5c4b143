//go:build unit

package commands_test

import (
	"context"
	"testing"

	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"
	sharedmock "macondo-backend/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func manualRequest() reqdto.ManualIssueRequest {
	return reqdto.ManualIssueRequest{
		PersonName:  "Eva",
		PersonEmail: "eva@example.com",
		PersonPhone: "600300400",
	}
}

func TestIssueManual(t *testing.T) {
	ctx := context.Background()

	t.Run("active grants are emailed and dated today", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		cmds := commands.NewCoverAdminCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		req := manualRequest()
		req.Quantity = ptr(2)
		res, err := cmds.IssueManual(ctx, req)
		require.NoError(t, err)
		require.Len(t, res.Tickets, 2)
		assert.Equal(t, 2, res.Emailed)
		for _, tk := range res.Tickets {
			assert.Equal(t, ticket.StatusManual, tk.Status())
			assert.Zero(t, tk.PricePLN())
			assert.Equal(t, "2026-03-14", tk.EventDate())
		}
		assert.NotEqual(t, res.Tickets[0].QRToken(), res.Tickets[1].QRToken())
	})

	t.Run("inactive grants wait unsent", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverAdminCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		req := manualRequest()
		req.Active = ptr(false)
		req.EventDate = ptr("2026-04-01")
		res, err := cmds.IssueManual(ctx, req)
		require.NoError(t, err)
		require.Len(t, res.Tickets, 1)
		assert.Equal(t, ticket.StatusManualPending, res.Tickets[0].Status())
		assert.Equal(t, "2026-04-01", res.Tickets[0].EventDate())
		assert.Zero(t, res.Emailed)
	})

	t.Run("quantity is clamped", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverAdminCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		req := manualRequest()
		req.Active = ptr(false)
		req.Quantity = ptr(500)
		res, err := cmds.IssueManual(ctx, req)
		require.NoError(t, err)
		assert.Len(t, res.Tickets, 50)

		req.Quantity = ptr(-3)
		res, err = cmds.IssueManual(ctx, req)
		require.NoError(t, err)
		assert.Len(t, res.Tickets, 1)
	})

	t.Run("phone is required", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverAdminCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		req := manualRequest()
		req.PersonPhone = ""
		_, err := cmds.IssueManual(ctx, req)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestTicketAdministration(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*env, commands.CoverAdminCommands, commands.RedemptionCommands, *sharedmock.MockDispatcher) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		return e,
			commands.NewCoverAdminCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger()),
			commands.NewRedemptionCommands(e.uow, e.clock, e.cfg, discardLogger()),
			dispatcher
	}

	t.Run("disable then re-enable restores the priced status", func(t *testing.T) {
		e, admin, _, _ := setup(t)
		tk := e.seedTicket(t, ticket.StatusPaid, 30)

		got, err := admin.SetTicketActive(ctx, tk.ID(), false)
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusDisabled, got.Status())

		got, err = admin.SetTicketActive(ctx, tk.ID(), true)
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusPaid, got.Status())
	})

	t.Run("a used ticket cannot be reactivated but can be reset", func(t *testing.T) {
		e, admin, redeem, _ := setup(t)
		tk := e.seedTicket(t, ticket.StatusManual, 0)

		_, err := redeem.Redeem(ctx, tk.QRToken(), "door1")
		require.NoError(t, err)
		_, err = admin.SetTicketActive(ctx, tk.ID(), false)
		require.NoError(t, err)

		_, err = admin.SetTicketActive(ctx, tk.ID(), true)
		assert.ErrorIs(t, err, commands.ErrTicketUsed)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		reset, err := admin.ResetTicket(ctx, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, reset.UsedAt())
		assert.Nil(t, reset.UsedBy())
		assert.Equal(t, ticket.StatusManual, reset.Status())

		_, err = redeem.Redeem(ctx, tk.QRToken(), "door2")
		assert.NoError(t, err)
	})

	t.Run("accepting a private invitation makes it admittable and sends the QR", func(t *testing.T) {
		e, admin, _, dispatcher := setup(t)
		tk := e.seedTicket(t, ticket.StatusPrivatePending, 0)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := admin.AcceptPrivate(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusManual, got.Status())

		_, err = admin.AcceptPrivate(ctx, tk.ID())
		assert.ErrorIs(t, err, commands.ErrTicketNotPending)
	})

	t.Run("delete", func(t *testing.T) {
		e, admin, _, _ := setup(t)
		tk := e.seedTicket(t, ticket.StatusPaid, 30)

		require.NoError(t, admin.DeleteTicket(ctx, tk.ID()))
		err := admin.DeleteTicket(ctx, tk.ID())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, admin, _, _ := setup(t)
		_, err := admin.ResetTicket(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestUpdateConfig(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ctrl := gomock.NewController(t)
	cmds := commands.NewCoverAdminCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

	cfg, err := cmds.UpdateConfig(ctx, reqdto.UpdateCoverConfigRequest{DJName: " Dj Luna ", PricePLN: 45})
	require.NoError(t, err)
	assert.Equal(t, "Dj Luna", cfg.DJName)
	assert.True(t, cfg.Active)

	stored, err := e.uow.Direct().CoverConfig().Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(45), stored.PricePLN)

	_, err = cmds.UpdateConfig(ctx, reqdto.UpdateCoverConfigRequest{DJName: "x", PricePLN: 0})
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = cmds.UpdateConfig(ctx, reqdto.UpdateCoverConfigRequest{DJName: "x", PricePLN: 10, Mode: "rave"})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
