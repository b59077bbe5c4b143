package commands

import (
	"context"
	"log/slog"
	"strings"

	"macondo-backend/internal/domain/reservation"
	reqdto "macondo-backend/internal/handler/dto/request"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	Reservation *reservation.Reservation
	// CheckErr is set when the conflict check could not run and the booking was accepted anyway
	CheckErr error
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
	SetStatus(ctx context.Context, id uuid.UUID, req reqdto.SetReservationStatusRequest) (*reservation.Reservation, error)
	AssignTable(ctx context.Context, id uuid.UUID, req reqdto.AssignTableRequest) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	checker    ConflictChecker
	dispatcher shared.Dispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	checker ConflictChecker,
	dispatcher shared.Dispatcher,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		checker:    checker,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

// Create checks the table and inserts. The check and the insert are not atomic; staff reconcile
// the rare double booking.
func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error) {
	res, err := req.ToDomain(r.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	avail := r.checker.Check(ctx, candidateOf(res))
	if !avail.Available {
		return nil, &NotAvailableError{Conflicts: avail.Conflicts}
	}

	if err := r.uow.Direct().Reservations().Create(ctx, res); err != nil {
		return nil, errs.Wrap(err, "create reservation")
	}

	email, err := reservationEmail(res)
	if err != nil {
		r.logger.Warn("failed to render reservation email", "reservation_id", res.ID(), "error", err.Error())
	} else {
		dispatchAll(ctx, r.dispatcher, r.logger, []shared.Email{email})
	}

	return &CreateReservationResult{Reservation: res, CheckErr: avail.Err}, nil
}

func (r *reservationCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, req reqdto.SetReservationStatusRequest) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(req.Status)
	if err != nil {
		return nil, validation(err)
	}
	return r.uow.Direct().Reservations().UpdateStatus(ctx, id, status)
}

// AssignTable refuses a table that is taken around this reservation's time. The reservation
// itself never counts as a conflict.
func (r *reservationCommandsImpl) AssignTable(ctx context.Context, id uuid.UUID, req reqdto.AssignTableRequest) (*reservation.Reservation, error) {
	var tableID *string
	if req.TableID != nil {
		if t := strings.TrimSpace(*req.TableID); t != "" {
			tableID = &t
		}
	}

	repo := r.uow.Direct().Reservations()
	existing, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tableID != nil && existing.IsActive() {
		avail := r.checker.Check(ctx, reservation.Candidate{
			Date:      existing.Date(),
			EntryTime: existing.EntryTime(),
			ExitTime:  existing.ExitTime(),
			TableID:   tableID,
			Exclude:   existing.ID(),
		})
		if !avail.Available {
			return nil, &NotAvailableError{Conflicts: avail.Conflicts}
		}
	}

	return repo.AssignTable(ctx, id, tableID)
}

func candidateOf(res *reservation.Reservation) reservation.Candidate {
	return reservation.Candidate{
		Date:      res.Date(),
		EntryTime: res.EntryTime(),
		ExitTime:  res.ExitTime(),
		TableID:   res.TableID(),
	}
}
