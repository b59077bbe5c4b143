package commands

import (
	"context"
	"log/slog"
	"strings"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/intent"
	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

var (
	ErrCoverClosed       = errs.Validation("cover sales are not active")
	ErrPrivateEventMode  = errs.Validation("private event: use the registration form")
	ErrPrivateNotEnabled = errs.Validation("private event registration is not enabled")
	ErrMissingIntentID   = errs.Validation("missing cover_intent_id")
)

type CheckoutResult struct {
	IntentID  string
	DJName    string
	PricePLN  int64
	Quantity  int
	AmountPLN int64
}

type FulfillResult struct {
	Tickets          []*ticket.Ticket
	AlreadyFulfilled bool
	Emailed          int
}

type CoverCommands interface {
	StageCheckout(ctx context.Context, req reqdto.CheckoutRequest) (*CheckoutResult, error)
	FulfillIntent(ctx context.Context, intentID string, sessionID *string) (*FulfillResult, error)
	RegisterPrivate(ctx context.Context, req reqdto.PrivateRegisterRequest) (*IssueResult, error)
}

type coverCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher shared.Dispatcher
	clock      clock.Clock
	cfg        config.CoverConfig
	logger     *slog.Logger
}

func NewCoverCommands(
	uow shared.UnitOfWork,
	dispatcher shared.Dispatcher,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CoverCommands {
	return &coverCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clock,
		cfg:        cfg.Cover,
		logger:     logger,
	}
}

// StageCheckout records a pending intent. The payment session itself is created by the
// checkout collaborator, which passes IntentID back as cover_intent_id metadata.
func (c *coverCommandsImpl) StageCheckout(ctx context.Context, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	people, err := validatePurchase(req.Buyer(), req.ConsentConfirm, req.Attendees())
	if err != nil {
		return nil, err
	}

	cfg, err := currentConfig(ctx, c.uow.Direct())
	if err != nil {
		return nil, err
	}
	if !cfg.Active {
		return nil, ErrCoverClosed
	}
	if cfg.IsPrivate() {
		return nil, ErrPrivateEventMode
	}

	in, err := intent.NewIntent(intent.NewIntentInput{
		Buyer:            req.Buyer(),
		People:           people,
		ConsentConfirm:   req.ConsentConfirm,
		ConsentMarketing: req.ConsentMarketing,
		DJName:           cfg.DJName,
		PricePLN:         cfg.PricePLN,
	}, c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	if err := c.uow.Direct().Intents().Create(ctx, in); err != nil {
		return nil, errs.Wrap(err, "stage checkout")
	}

	return &CheckoutResult{
		IntentID:  in.IntentID(),
		DJName:    in.DJName(),
		PricePLN:  in.PricePLN(),
		Quantity:  in.Quantity(),
		AmountPLN: in.PricePLN() * int64(in.Quantity()),
	}, nil
}

// FulfillIntent turns a confirmed payment into paid tickets exactly once. The pending→fulfilled
// flip and the ticket insert share one unit of work; a repeated delivery finds the intent
// fulfilled and writes nothing.
func (c *coverCommandsImpl) FulfillIntent(ctx context.Context, intentID string, sessionID *string) (*FulfillResult, error) {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return nil, ErrMissingIntentID
	}

	result := &FulfillResult{}
	var consent bool

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		in, err := tx.Intents().FindByIntentID(ctx, intentID)
		if err != nil {
			return err
		}
		if in.IsFulfilled() {
			result.AlreadyFulfilled = true
			return nil
		}

		now := c.clock.Now()
		won, err := tx.Intents().MarkFulfilled(ctx, intentID, sessionID, now)
		if err != nil {
			return err
		}
		if !won {
			result.AlreadyFulfilled = true
			return nil
		}

		tickets, err := buildTickets(ticket.Issue{
			Buyer:     in.Buyer(),
			EventName: in.DJName(),
			PricePLN:  in.PricePLN(),
			Status:    ticket.StatusPaid,
			EventDate: clock.Today(c.clock, c.cfg.Location()),
		}, in.People(), now)
		if err != nil {
			return err
		}
		if err := tx.Tickets().CreateBatch(ctx, tickets); err != nil {
			return err
		}

		result.Tickets = tickets
		consent = in.ConsentMarketing()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.AlreadyFulfilled {
		c.logger.Info("cover intent already fulfilled", "intent_id", intentID)
		return result, nil
	}

	c.upsertClients(ctx, result.Tickets, consent)
	result.Emailed = c.sendTickets(ctx, result.Tickets)
	return result, nil
}

// RegisterPrivate files free, pending invitations while the private event mode is on.
func (c *coverCommandsImpl) RegisterPrivate(ctx context.Context, req reqdto.PrivateRegisterRequest) (*IssueResult, error) {
	people, err := validatePurchase(req.Buyer(), req.ConsentConfirm, req.Attendees())
	if err != nil {
		return nil, err
	}

	cfg, err := currentConfig(ctx, c.uow.Direct())
	if err != nil {
		return nil, err
	}
	if !cfg.IsPrivate() {
		return nil, ErrPrivateNotEnabled
	}
	if !cfg.Active {
		return nil, ErrCoverClosed
	}

	tickets, err := buildTickets(ticket.Issue{
		Buyer:     req.Buyer(),
		EventName: cfg.EventName(),
		PricePLN:  0,
		Status:    ticket.StatusPrivatePending,
		EventDate: clock.Today(c.clock, c.cfg.Location()),
	}, people, c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := c.uow.Direct().Tickets().CreateBatch(ctx, tickets); err != nil {
		return nil, errs.Wrap(err, "register private event")
	}

	result := &IssueResult{Tickets: tickets, EventName: cfg.EventName()}
	emails, err := privateRequestEmails(tickets)
	if err != nil {
		c.logger.Warn("failed to render private request emails", "error", err.Error())
		return result, nil
	}
	result.Emailed = dispatchAll(ctx, c.dispatcher, c.logger, emails)
	return result, nil
}

func (c *coverCommandsImpl) upsertClients(ctx context.Context, tickets []*ticket.Ticket, consent bool) {
	clients := c.uow.Direct().Clients()
	for _, t := range tickets {
		if err := clients.Upsert(ctx, shared.ClientFromTicket(t, consent)); err != nil {
			c.logger.Warn("failed to upsert client", "email", t.PersonEmail(), "error", err.Error())
		}
	}
}

func (c *coverCommandsImpl) sendTickets(ctx context.Context, tickets []*ticket.Ticket) int {
	emails, err := ticketEmails(tickets, c.cfg.ResolveBaseURL())
	if err != nil {
		c.logger.Warn("failed to render ticket emails", "error", err.Error())
		return 0
	}
	return dispatchAll(ctx, c.dispatcher, c.logger, emails)
}

// currentConfig falls back to the defaults when nothing has been saved yet.
func currentConfig(ctx context.Context, tx shared.Tx) (cover.Config, error) {
	cfg, err := tx.CoverConfig().Current(ctx)
	if err != nil {
		return cover.Config{}, err
	}
	if cfg == nil {
		return cover.Default(), nil
	}
	return *cfg, nil
}
