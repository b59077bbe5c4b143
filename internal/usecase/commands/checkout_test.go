//go:build unit

package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/shared"
	sharedmock "macondo-backend/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func checkoutRequest(people ...reqdto.PersonRequest) reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		BuyerName:        "Ana",
		BuyerEmail:       "ana@example.com",
		People:           people,
		ConsentConfirm:   true,
		ConsentMarketing: true,
	}
}

func person(name string) reqdto.PersonRequest {
	return reqdto.PersonRequest{Name: name, Email: strings.ToLower(name) + "@example.com", Phone: "600100200"}
}

func TestStageCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("stages a pending intent priced from the current config", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		res, err := cmds.StageCheckout(ctx, checkoutRequest(person("Ana"), person("Luis")))
		require.NoError(t, err)
		assert.NotEmpty(t, res.IntentID)
		assert.Equal(t, cover.Default().DJName, res.DJName)
		assert.Equal(t, 2, res.Quantity)
		assert.Equal(t, cover.Default().PricePLN*2, res.AmountPLN)

		in, err := e.uow.Direct().Intents().FindByIntentID(ctx, res.IntentID)
		require.NoError(t, err)
		assert.False(t, in.IsFulfilled())
		assert.Len(t, in.People(), 2)
	})

	t.Run("attendee without a phone rejects the request before any store access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// strict mocks: any repository call fails the test
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		e := newEnv(t)
		cmds := commands.NewCoverCommands(uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		noPhone := person("Luis")
		noPhone.Phone = " "
		_, err := cmds.StageCheckout(ctx, checkoutRequest(person("Ana"), noPhone))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.ErrorIs(t, err, ticket.ErrIncompleteAttendee)
	})

	t.Run("buyer and consent are required", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		req := checkoutRequest(person("Ana"))
		req.BuyerEmail = ""
		_, err := cmds.StageCheckout(ctx, req)
		assert.ErrorIs(t, err, commands.ErrMissingBuyer)

		req = checkoutRequest(person("Ana"))
		req.ConsentConfirm = false
		_, err = cmds.StageCheckout(ctx, req)
		assert.ErrorIs(t, err, commands.ErrMissingConsent)
	})

	t.Run("closed sales and private mode refuse checkout", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		e.saveCover(t, cover.UpdateInput{DJName: "Dj X", PricePLN: 40, Active: false})
		_, err := cmds.StageCheckout(ctx, checkoutRequest(person("Ana")))
		assert.ErrorIs(t, err, commands.ErrCoverClosed)

		e.clock.Add(time.Second)
		e.saveCover(t, cover.UpdateInput{DJName: "Dj X", PricePLN: 40, Active: true, Mode: "private_event"})
		_, err = cmds.StageCheckout(ctx, checkoutRequest(person("Ana")))
		assert.ErrorIs(t, err, commands.ErrPrivateEventMode)
	})
}

func TestFulfillIntent(t *testing.T) {
	ctx := context.Background()

	stage := func(t *testing.T, e *env, people ...reqdto.PersonRequest) string {
		t.Helper()
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())
		res, err := cmds.StageCheckout(ctx, checkoutRequest(people...))
		require.NoError(t, err)
		return res.IntentID
	}

	t.Run("issues one paid ticket per attendee and emails each", func(t *testing.T) {
		e := newEnv(t)
		intentID := stage(t, e, person("Ana"), person("Luis"))

		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		var sent []shared.Email
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, em shared.Email) error {
				sent = append(sent, em)
				return nil
			}).Times(2)
		cmds := commands.NewCoverCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		session := "cs_test_1"
		res, err := cmds.FulfillIntent(ctx, intentID, &session)
		require.NoError(t, err)
		assert.False(t, res.AlreadyFulfilled)
		assert.Equal(t, 2, res.Emailed)
		require.Len(t, res.Tickets, 2)
		for _, tk := range res.Tickets {
			assert.Equal(t, ticket.StatusPaid, tk.Status())
			assert.Equal(t, "2026-03-14", tk.EventDate())
		}
		assert.Equal(t, "ana@example.com", sent[0].ToAddress)
		assert.Contains(t, sent[0].HTMLBody, res.Tickets[0].QRToken())

		in, err := e.uow.Direct().Intents().FindByIntentID(ctx, intentID)
		require.NoError(t, err)
		assert.True(t, in.IsFulfilled())
		require.NotNil(t, in.StripeSessionID())
		assert.Equal(t, session, *in.StripeSessionID())
	})

	t.Run("a repeated delivery writes nothing", func(t *testing.T) {
		e := newEnv(t)
		intentID := stage(t, e, person("Ana"), person("Luis"), person("Eva"))

		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		cmds := commands.NewCoverCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		_, err := cmds.FulfillIntent(ctx, intentID, nil)
		require.NoError(t, err)

		again, err := cmds.FulfillIntent(ctx, intentID, nil)
		require.NoError(t, err)
		assert.True(t, again.AlreadyFulfilled)
		assert.Empty(t, again.Tickets)

		all, err := e.uow.Direct().Tickets().List(ctx, shared.TicketFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("concurrent deliveries issue the batch once", func(t *testing.T) {
		e := newEnv(t)
		intentID := stage(t, e, person("Ana"), person("Luis"))

		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		cmds := commands.NewCoverCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cmds.FulfillIntent(ctx, intentID, nil)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		all, err := e.uow.Direct().Tickets().List(ctx, shared.TicketFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("email failures do not undo the fulfillment", func(t *testing.T) {
		e := newEnv(t)
		intentID := stage(t, e, person("Ana"))

		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errs.ErrUpstream).Times(1)
		cmds := commands.NewCoverCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		res, err := cmds.FulfillIntent(ctx, intentID, nil)
		require.NoError(t, err)
		assert.Len(t, res.Tickets, 1)
		assert.Zero(t, res.Emailed)
	})

	t.Run("unknown and missing intent ids", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		_, err := cmds.FulfillIntent(ctx, "missing", nil)
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		_, err = cmds.FulfillIntent(ctx, " ", nil)
		assert.ErrorIs(t, err, commands.ErrMissingIntentID)
	})
}

func TestRegisterPrivate(t *testing.T) {
	ctx := context.Background()

	t.Run("refused outside private mode", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		cmds := commands.NewCoverCommands(e.uow, sharedmock.NewMockDispatcher(ctrl), e.clock, e.cfg, discardLogger())

		_, err := cmds.RegisterPrivate(ctx, checkoutRequest(person("Ana")))
		assert.ErrorIs(t, err, commands.ErrPrivateNotEnabled)
	})

	t.Run("files free pending invitations under the event title", func(t *testing.T) {
		e := newEnv(t)
		title := "Cumple de Eva"
		e.saveCover(t, cover.UpdateInput{DJName: "Dj X", PricePLN: 40, Active: true, Mode: "private_event", PrivateTitle: &title})

		ctrl := gomock.NewController(t)
		dispatcher := sharedmock.NewMockDispatcher(ctrl)
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		cmds := commands.NewCoverCommands(e.uow, dispatcher, e.clock, e.cfg, discardLogger())

		res, err := cmds.RegisterPrivate(ctx, checkoutRequest(person("Ana"), person("Luis")))
		require.NoError(t, err)
		assert.Equal(t, title, res.EventName)
		assert.Equal(t, 2, res.Emailed)
		for _, tk := range res.Tickets {
			assert.Equal(t, ticket.StatusPrivatePending, tk.Status())
			assert.Zero(t, tk.PricePLN())
			assert.Equal(t, title, tk.DJName())
		}
	})
}
