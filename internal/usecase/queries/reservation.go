package queries

import (
	"context"
	"strings"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

type ReservationFilters struct {
	Date   string
	Status string
	Limit  int
}

type ReservationQueries interface {
	List(ctx context.Context, filters ReservationFilters) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) List(ctx context.Context, filters ReservationFilters) ([]*ReservationView, error) {
	f := shared.ReservationFilter{Limit: ValidateLimit(filters.Limit)}
	if d := strings.TrimSpace(filters.Date); d != "" {
		date, err := reservation.ParseDate(d)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		f.Date = date
	}
	if s := strings.TrimSpace(filters.Status); s != "" {
		status, err := reservation.ParseStatus(s)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		f.Status = status.String()
	}

	rs, err := q.uow.Direct().Reservations().List(ctx, f)
	if err != nil {
		return nil, err
	}
	return NewReservationViews(rs), nil
}
