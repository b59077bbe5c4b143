package commands

import (
	"context"
	"log/slog"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/patch"
	"macondo-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	minManualQuantity = 1
	maxManualQuantity = 50
)

var (
	ErrTicketUsed       = errs.Mark(errs.New("ticket already used, cannot reactivate"), errs.ErrConflict)
	ErrTicketNotPending = errs.Mark(errs.New("ticket is not pending or was already used"), errs.ErrConflict)
)

type CoverAdminCommands interface {
	IssueManual(ctx context.Context, req reqdto.ManualIssueRequest) (*IssueResult, error)
	SetTicketActive(ctx context.Context, id uuid.UUID, active bool) (*ticket.Ticket, error)
	ResetTicket(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	AcceptPrivate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) error
	UpdateConfig(ctx context.Context, req reqdto.UpdateCoverConfigRequest) (*cover.Config, error)
}

type coverAdminCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher shared.Dispatcher
	clock      clock.Clock
	cfg        config.CoverConfig
	logger     *slog.Logger
}

func NewCoverAdminCommands(
	uow shared.UnitOfWork,
	dispatcher shared.Dispatcher,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CoverAdminCommands {
	return &coverAdminCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clock,
		cfg:        cfg.Cover,
		logger:     logger,
	}
}

// IssueManual writes quantity free tickets for one person. Inactive tickets wait as
// manual_pending and are not emailed.
func (c *coverAdminCommandsImpl) IssueManual(ctx context.Context, req reqdto.ManualIssueRequest) (*IssueResult, error) {
	people, err := ticket.ValidateAttendees([]ticket.Person{req.Person()})
	if err != nil {
		return nil, validation(err)
	}
	person := people[0]

	eventDate := clock.Today(c.clock, c.cfg.Location())
	if req.EventDate != nil && *req.EventDate != "" {
		if eventDate, err = reservation.ParseDate(*req.EventDate); err != nil {
			return nil, validation(err)
		}
	}

	quantity := min(max(patch.Coalesce(req.Quantity, minManualQuantity), minManualQuantity), maxManualQuantity)
	active := patch.Coalesce(req.Active, true)
	status := ticket.StatusManualPending
	if active {
		status = ticket.StatusManual
	}

	cfg, err := currentConfig(ctx, c.uow.Direct())
	if err != nil {
		return nil, err
	}

	attendees := make([]ticket.Person, quantity)
	for i := range attendees {
		attendees[i] = person
	}
	phone := person.Phone
	tickets, err := buildTickets(ticket.Issue{
		Buyer:     ticket.Buyer{Name: person.Name, Email: person.Email, Phone: &phone},
		EventName: cfg.EventName(),
		PricePLN:  0,
		Status:    status,
		EventDate: eventDate,
	}, attendees, c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := c.uow.Direct().Tickets().CreateBatch(ctx, tickets); err != nil {
		return nil, errs.Wrap(err, "issue manual tickets")
	}

	result := &IssueResult{Tickets: tickets, EventName: cfg.EventName()}
	if active {
		result.Emailed = c.sendTickets(ctx, tickets)
	}
	return result, nil
}

// SetTicketActive disables a ticket or restores the active status implied by its price.
// A used ticket cannot be reactivated.
func (c *coverAdminCommandsImpl) SetTicketActive(ctx context.Context, id uuid.UUID, active bool) (*ticket.Ticket, error) {
	repo := c.uow.Direct().Tickets()
	t, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !active {
		return repo.SetStatus(ctx, id, ticket.StatusDisabled)
	}
	if t.IsUsed() {
		return nil, ErrTicketUsed
	}
	return repo.SetStatus(ctx, id, ticket.InferActiveStatus(t.Status(), t.PricePLN()))
}

// ResetTicket is the only path that clears used_at.
func (c *coverAdminCommandsImpl) ResetTicket(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	repo := c.uow.Direct().Tickets()
	t, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reset, err := repo.ResetUsed(ctx, id, ticket.InferActiveStatus(t.Status(), t.PricePLN()))
	if err != nil {
		return nil, err
	}
	c.logger.Info("ticket reset", "ticket_id", id)
	return reset, nil
}

func (c *coverAdminCommandsImpl) AcceptPrivate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	repo := c.uow.Direct().Tickets()
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	accepted, err := repo.AcceptPrivate(ctx, id)
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		return nil, ErrTicketNotPending
	}
	c.sendTickets(ctx, []*ticket.Ticket{accepted})
	return accepted, nil
}

func (c *coverAdminCommandsImpl) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	found, err := c.uow.Direct().Tickets().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.Wrap(errs.ErrNotFound, "ticket not found")
	}
	return nil
}

// UpdateConfig appends a new configuration row; the newest row is the current one.
func (c *coverAdminCommandsImpl) UpdateConfig(ctx context.Context, req reqdto.UpdateCoverConfigRequest) (*cover.Config, error) {
	cfg, err := cover.NewConfig(req.ToInput(), c.clock.Now())
	if err != nil {
		return nil, validation(err)
	}
	if err := c.uow.Direct().CoverConfig().Save(ctx, cfg); err != nil {
		return nil, errs.Wrap(err, "update cover config")
	}
	return &cfg, nil
}

func (c *coverAdminCommandsImpl) sendTickets(ctx context.Context, tickets []*ticket.Ticket) int {
	emails, err := ticketEmails(tickets, c.cfg.ResolveBaseURL())
	if err != nil {
		c.logger.Warn("failed to render ticket emails", "error", err.Error())
		return 0
	}
	return dispatchAll(ctx, c.dispatcher, c.logger, emails)
}
