package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMissingToken = errs.Validation("missing token")

type RedeemResult struct {
	TicketID   uuid.UUID
	UsedAt     time.Time
	UsedBy     string
	Grace      bool
	PersonName string
	DJName     string
	EventDate  string
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, token, staffUsername string) (*RedeemResult, error)
}

type redemptionCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	grace  time.Duration
	logger *slog.Logger
}

func NewRedemptionCommands(uow shared.UnitOfWork, clock clock.Clock, cfg config.Config, logger *slog.Logger) RedemptionCommands {
	grace := cfg.Cover.GraceWindow
	if grace <= 0 {
		grace = ticket.DefaultGraceWindow
	}
	return &redemptionCommandsImpl{
		uow:    uow,
		clock:  clock,
		grace:  grace,
		logger: logger,
	}
}

// Redeem admits a ticket at most once. The only write is a conditional update on used_at IS NULL,
// so concurrent scans of the same token produce a single winner. It never retries.
func (r *redemptionCommandsImpl) Redeem(ctx context.Context, token, staffUsername string) (*RedeemResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	repo := r.uow.Direct().Tickets()
	t, err := repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	admission, err := t.CheckAdmission(now, r.grace)
	if err != nil {
		return nil, err
	}

	if admission == ticket.AdmitGrace {
		return resultOf(t, *t.UsedAt(), deref(t.UsedBy()), true), nil
	}

	won, err := repo.MarkUsed(ctx, t.ID(), now, staffUsername)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, r.lostRace(ctx, repo, t.ID())
	}

	r.logger.Info("ticket redeemed", "ticket_id", t.ID(), "used_by", staffUsername)
	return resultOf(t, now, staffUsername, false), nil
}

// lostRace re-reads the winner's used_at/used_by for the error detail.
func (r *redemptionCommandsImpl) lostRace(ctx context.Context, repo shared.TicketRepository, id uuid.UUID) error {
	winner, err := repo.FindByID(ctx, id)
	if err != nil {
		return ticket.NewAlreadyUsedError(nil, nil)
	}
	return ticket.NewAlreadyUsedError(winner.UsedAt(), winner.UsedBy())
}

func resultOf(t *ticket.Ticket, usedAt time.Time, usedBy string, grace bool) *RedeemResult {
	return &RedeemResult{
		TicketID:   t.ID(),
		UsedAt:     usedAt,
		UsedBy:     usedBy,
		Grace:      grace,
		PersonName: t.PersonName(),
		DJName:     t.DJName(),
		EventDate:  t.EventDate(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
