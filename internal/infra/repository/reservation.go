package repository

import (
	"context"
	"log/slog"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/infra"
	"macondo-backend/internal/infra/repository/converter"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultReservationListLimit = 500

type ReservationRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewReservationRepository(db store.Store, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if _, err := r.db.Insert(ctx, converter.ReservationTable, converter.ReservationToRow(res)); err != nil {
		return infra.WrapStoreErr(r.logger, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rows, err := r.db.Select(ctx, converter.ReservationTable,
		store.Where(store.Eq(converter.ColID, id.String())).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to find reservation", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return converter.ReservationFromRow(rows[0])
}

func (r *ReservationRepository) ListActiveForTable(ctx context.Context, date, tableID string) ([]*reservation.Reservation, error) {
	rows, err := r.db.Select(ctx, converter.ReservationTable, store.Where(
		store.Eq(converter.ColDate, date),
		store.Eq(converter.ColTableID, tableID),
		store.In(converter.ColStatus, reservation.ActiveStatuses()...),
	))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to list reservations for table", err)
	}
	return converter.ReservationsFromRows(rows)
}

func (r *ReservationRepository) List(ctx context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	var filters []store.Filter
	if filter.Date != "" {
		filters = append(filters, store.Eq(converter.ColDate, filter.Date))
	}
	if filter.Status != "" {
		filters = append(filters, store.Eq(converter.ColStatus, filter.Status))
	}
	limit := filter.Limit
	if limit <= 0 || limit > defaultReservationListLimit {
		limit = defaultReservationListLimit
	}

	q := store.Where(filters...).
		OrderBy(converter.ColDate, false).
		OrderBy(converter.ColEntryTime, false).
		OrderBy(converter.ColCreatedAt, false).
		WithLimit(limit)
	rows, err := r.db.Select(ctx, converter.ReservationTable, q)
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to list reservations", err)
	}
	return converter.ReservationsFromRows(rows)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	return r.updateOne(ctx, id, store.Row{converter.ColStatus: status.String()}, "failed to update reservation status")
}

func (r *ReservationRepository) AssignTable(ctx context.Context, id uuid.UUID, tableID *string) (*reservation.Reservation, error) {
	var v any
	if tableID != nil {
		v = *tableID
	}
	return r.updateOne(ctx, id, store.Row{converter.ColTableID: v}, "failed to assign table")
}

func (r *ReservationRepository) updateOne(ctx context.Context, id uuid.UUID, set store.Row, msg string) (*reservation.Reservation, error) {
	rows, err := r.db.Update(ctx, converter.ReservationTable, set, store.Eq(converter.ColID, id.String()))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, msg, err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return converter.ReservationFromRow(rows[0])
}
