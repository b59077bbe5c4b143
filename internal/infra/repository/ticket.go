package repository

import (
	"context"
	"log/slog"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/infra"
	"macondo-backend/internal/infra/repository/converter"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultTicketListLimit = 200

type TicketRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewTicketRepository(db store.Store, logger *slog.Logger) *TicketRepository {
	return &TicketRepository{db: db, logger: logger}
}

func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	rows := make([]store.Row, len(tickets))
	for i, t := range tickets {
		rows[i] = converter.TicketToRow(t)
	}
	if _, err := r.db.Insert(ctx, converter.TicketTable, rows...); err != nil {
		return infra.WrapStoreErr(r.logger, "failed to create tickets", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	return r.findOne(ctx, store.Eq(converter.ColID, id.String()))
}

func (r *TicketRepository) FindByToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return r.findOne(ctx, store.Eq(converter.ColQRToken, token))
}

func (r *TicketRepository) findOne(ctx context.Context, f store.Filter) (*ticket.Ticket, error) {
	rows, err := r.db.Select(ctx, converter.TicketTable, store.Where(f).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to find ticket", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "ticket not found", nil)
	}
	return converter.TicketFromRow(rows[0])
}

func (r *TicketRepository) List(ctx context.Context, filter shared.TicketFilter) ([]*ticket.Ticket, error) {
	var filters []store.Filter
	switch filter.Status {
	case "":
	case shared.TicketFilterUsed:
		filters = append(filters, store.NotNull(converter.ColUsedAt))
	default:
		filters = append(filters, store.Eq(converter.ColStatus, filter.Status))
	}
	if filter.EventDate != "" {
		filters = append(filters, store.Eq(converter.ColEventDate, filter.EventDate))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTicketListLimit
	}

	q := store.Where(filters...).OrderBy(converter.ColCreatedAt, true).WithLimit(limit)
	rows, err := r.db.Select(ctx, converter.TicketTable, q)
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to list tickets", err)
	}
	return converter.TicketsFromRows(rows)
}

func (r *TicketRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time, usedBy string) (bool, error) {
	rows, err := r.db.Update(ctx, converter.TicketTable,
		store.Row{converter.ColUsedAt: usedAt, converter.ColUsedBy: usedBy},
		store.Eq(converter.ColID, id.String()),
		store.IsNull(converter.ColUsedAt),
	)
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, "failed to mark ticket used", err)
	}
	return len(rows) == 1, nil
}

func (r *TicketRepository) SetStatus(ctx context.Context, id uuid.UUID, status ticket.Status) (*ticket.Ticket, error) {
	return r.updateOne(ctx, id, store.Row{converter.ColStatus: status.String()}, "failed to set ticket status")
}

func (r *TicketRepository) ResetUsed(ctx context.Context, id uuid.UUID, status ticket.Status) (*ticket.Ticket, error) {
	set := store.Row{
		converter.ColUsedAt: nil,
		converter.ColUsedBy: nil,
		converter.ColStatus: status.String(),
	}
	return r.updateOne(ctx, id, set, "failed to reset ticket")
}

func (r *TicketRepository) AcceptPrivate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	rows, err := r.db.Update(ctx, converter.TicketTable,
		store.Row{converter.ColStatus: ticket.StatusManual.String(), converter.ColPricePLN: int64(0)},
		store.Eq(converter.ColID, id.String()),
		store.Eq(converter.ColStatus, ticket.StatusPrivatePending.String()),
		store.IsNull(converter.ColUsedAt),
	)
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to accept private ticket", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return converter.TicketFromRow(rows[0])
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.db.Delete(ctx, converter.TicketTable, store.Eq(converter.ColID, id.String()))
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, "failed to delete ticket", err)
	}
	return n > 0, nil
}

func (r *TicketRepository) updateOne(ctx context.Context, id uuid.UUID, set store.Row, msg string) (*ticket.Ticket, error) {
	rows, err := r.db.Update(ctx, converter.TicketTable, set, store.Eq(converter.ColID, id.String()))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, msg, err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "ticket not found", nil)
	}
	return converter.TicketFromRow(rows[0])
}
