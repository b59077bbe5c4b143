package commands

import (
	"context"
	"log/slog"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

// NotAvailableError carries the reservations that block a requested slot.
type NotAvailableError struct {
	Conflicts []*reservation.Reservation
}

func (e *NotAvailableError) Error() string {
	return "table not available for the requested time"
}

func (e *NotAvailableError) Is(target error) bool {
	return target == errs.ErrNotAvailable
}

// validation tags a domain rule violation as a client error.
func validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// dispatchAll sends every email and logs failures. The caller's result never depends on delivery.
func dispatchAll(ctx context.Context, d shared.Dispatcher, logger *slog.Logger, emails []shared.Email) int {
	sent := 0
	for _, e := range emails {
		if err := d.Dispatch(ctx, e); err != nil {
			logger.Warn("failed to dispatch email",
				"to", e.ToAddress,
				"subject", e.Subject,
				"error", err.Error())
			continue
		}
		sent++
	}
	return sent
}
