//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"macondo-backend/internal/domain/reservation"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"
	sharedmock "macondo-backend/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func bookingRequest(entry string) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:      "Ana",
		Email:     "ana@example.com",
		Date:      "2026-03-14",
		EntryTime: ptr(entry),
		PartySize: ptr(4),
		TableID:   ptr("T1"),
	}
}

func TestConflictCheckerFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	repo := sharedmock.NewMockReservationRepository(ctrl)
	storeErr := errors.New("connection refused")

	uow.EXPECT().Direct().Return(tx).AnyTimes()
	tx.EXPECT().Reservations().Return(repo).AnyTimes()
	repo.EXPECT().ListActiveForTable(gomock.Any(), "2026-03-14", "T1").Return(nil, storeErr).Times(1)

	checker := commands.NewConflictChecker(uow, discardLogger())
	entry := reservation.MustClockTime("19:00")
	got := checker.Check(context.Background(), reservation.Candidate{
		Date:      "2026-03-14",
		EntryTime: &entry,
		TableID:   ptr("T1"),
	})

	assert.True(t, got.Available)
	assert.Empty(t, got.Conflicts)
	assert.ErrorIs(t, got.Err, storeErr)
}

func TestConflictCheckerSkipsUncheckableCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: the store must not be touched
	checker := commands.NewConflictChecker(sharedmock.NewMockUnitOfWork(ctrl), discardLogger())

	got := checker.Check(context.Background(), reservation.Candidate{Date: "2026-03-14", TableID: ptr("T1")})
	assert.True(t, got.Available)
	assert.NoError(t, got.Err)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts the booking when the check cannot run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		repo := sharedmock.NewMockReservationRepository(ctrl)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		storeErr := errors.New("timeout")

		uow.EXPECT().Direct().Return(tx).AnyTimes()
		tx.EXPECT().Reservations().Return(repo).AnyTimes()
		repo.EXPECT().ListActiveForTable(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		e := newEnv(t)
		checker := commands.NewConflictChecker(uow, discardLogger())
		cmds := commands.NewReservationCommands(uow, checker, dispatcher, e.clock, discardLogger())

		res, err := cmds.Create(ctx, bookingRequest("19:00"))
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, res.Reservation.Status())
		assert.ErrorIs(t, res.CheckErr, storeErr)
	})

	t.Run("refuses an overlapping booking with the blocking rows", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		cmds := commands.NewReservationCommands(e.uow, commands.NewConflictChecker(e.uow, discardLogger()), dispatcher, e.clock, discardLogger())

		first, err := cmds.Create(ctx, bookingRequest("19:00"))
		require.NoError(t, err)

		_, err = cmds.Create(ctx, bookingRequest("20:30"))
		var na *commands.NotAvailableError
		require.True(t, errs.As(err, &na))
		require.Len(t, na.Conflicts, 1)
		assert.Equal(t, first.Reservation.ID(), na.Conflicts[0].ID())
		assert.True(t, errs.Is(err, errs.ErrNotAvailable))
	})

	t.Run("invalid input is a validation error", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewReservationCommands(e.uow, commands.NewConflictChecker(e.uow, discardLogger()),
			sharedmock.NewMockDispatcher(ctrl), e.clock, discardLogger())

		req := bookingRequest("19:00")
		req.Email = "nope"
		_, err := cmds.Create(ctx, req)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, reservation.ErrInvalidEmail)
	})
}

func TestAssignTable(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ctrl := gomock.NewController(t)
	dispatcher := sharedmock.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cmds := commands.NewReservationCommands(e.uow, commands.NewConflictChecker(e.uow, discardLogger()), dispatcher, e.clock, discardLogger())

	onT1, err := cmds.Create(ctx, bookingRequest("19:00"))
	require.NoError(t, err)
	req := bookingRequest("20:00")
	req.TableID = nil
	loose, err := cmds.Create(ctx, req)
	require.NoError(t, err)

	t.Run("moving onto a taken table is refused", func(t *testing.T) {
		_, err := cmds.AssignTable(ctx, loose.Reservation.ID(), reqdto.AssignTableRequest{TableID: ptr("T1")})
		assert.True(t, errs.Is(err, errs.ErrNotAvailable))
	})

	t.Run("a reservation never conflicts with itself", func(t *testing.T) {
		got, err := cmds.AssignTable(ctx, onT1.Reservation.ID(), reqdto.AssignTableRequest{TableID: ptr("T1")})
		require.NoError(t, err)
		assert.Equal(t, "T1", *got.TableID())
	})

	t.Run("blank table clears the assignment", func(t *testing.T) {
		got, err := cmds.AssignTable(ctx, onT1.Reservation.ID(), reqdto.AssignTableRequest{TableID: ptr(" ")})
		require.NoError(t, err)
		assert.Nil(t, got.TableID())
	})

	t.Run("cancelling frees the table", func(t *testing.T) {
		_, err := cmds.AssignTable(ctx, onT1.Reservation.ID(), reqdto.AssignTableRequest{TableID: ptr("T1")})
		require.NoError(t, err)
		_, err = cmds.SetStatus(ctx, onT1.Reservation.ID(), reqdto.SetReservationStatusRequest{Status: "cancelled"})
		require.NoError(t, err)

		got, err := cmds.AssignTable(ctx, loose.Reservation.ID(), reqdto.AssignTableRequest{TableID: ptr("T1")})
		require.NoError(t, err)
		assert.Equal(t, "T1", *got.TableID())
	})

	t.Run("unknown status and reservation", func(t *testing.T) {
		_, err := cmds.SetStatus(ctx, onT1.Reservation.ID(), reqdto.SetReservationStatusRequest{Status: "seated"})
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = cmds.AssignTable(ctx, uuid.New(), reqdto.AssignTableRequest{TableID: ptr("T2")})
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
