package queries

import (
	"context"
	"strings"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

type TicketFilters struct {
	Status string
	// Q is a case-insensitive substring over names, emails, status and token
	Q     string
	Limit int
}

type TicketQueries interface {
	ListToday(ctx context.Context) ([]*TicketView, error)
	List(ctx context.Context, filters TicketFilters) ([]*TicketView, error)
	GetByToken(ctx context.Context, token string) (*ticket.Ticket, error)
}

type ticketQueriesImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	cover      config.CoverConfig
	todayLimit int
}

func NewTicketQueries(uow shared.UnitOfWork, clock clock.Clock, cfg config.Config) TicketQueries {
	return &ticketQueriesImpl{
		uow:        uow,
		clock:      clock,
		cover:      cfg.Cover,
		todayLimit: cfg.Staff.TicketListLimit,
	}
}

// ListToday is the door list: tickets for today in the venue's timezone, newest first.
func (q *ticketQueriesImpl) ListToday(ctx context.Context) ([]*TicketView, error) {
	ts, err := q.uow.Direct().Tickets().List(ctx, shared.TicketFilter{
		EventDate: clock.Today(q.clock, q.cover.Location()),
		Limit:     ValidateLimit(q.todayLimit),
	})
	if err != nil {
		return nil, err
	}
	return NewTicketViews(ts), nil
}

func (q *ticketQueriesImpl) List(ctx context.Context, filters TicketFilters) ([]*TicketView, error) {
	ts, err := q.uow.Direct().Tickets().List(ctx, shared.TicketFilter{
		Status: strings.ToLower(strings.TrimSpace(filters.Status)),
		Limit:  ValidateLimit(filters.Limit),
	})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(filters.Q))
	if needle == "" {
		return NewTicketViews(ts), nil
	}
	matched := make([]*ticket.Ticket, 0, len(ts))
	for _, t := range ts {
		if matchesTicket(t, needle) {
			matched = append(matched, t)
		}
	}
	return NewTicketViews(matched), nil
}

// GetByToken returns only the ticket the token names.
func (q *ticketQueriesImpl) GetByToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.Validation("missing token")
	}
	return q.uow.Direct().Tickets().FindByToken(ctx, token)
}

func matchesTicket(t *ticket.Ticket, needle string) bool {
	for _, field := range []string{
		t.PersonEmail(), t.BuyerEmail(), t.PersonName(), t.BuyerName(), t.Status().String(), t.QRToken(),
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
