package commands

import (
	"context"
	"log/slog"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/usecase/shared"
)

// ConflictChecker decides whether a table is free around a requested time.
// Store failures never block a booking: the verdict is available and Err is set.
type ConflictChecker interface {
	Check(ctx context.Context, c reservation.Candidate) reservation.Availability
}

type conflictCheckerImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewConflictChecker(uow shared.UnitOfWork, logger *slog.Logger) ConflictChecker {
	return &conflictCheckerImpl{uow: uow, logger: logger}
}

func (c *conflictCheckerImpl) Check(ctx context.Context, cand reservation.Candidate) reservation.Availability {
	if !cand.Checkable() {
		return reservation.Availability{Available: true}
	}

	existing, err := c.uow.Direct().Reservations().ListActiveForTable(ctx, cand.Date, *cand.TableID)
	if err != nil {
		c.logger.Warn("conflict check failed, allowing reservation",
			"date", cand.Date,
			"table_id", *cand.TableID,
			"error", err.Error())
		return reservation.Availability{Available: true, Err: err}
	}

	conflicts := reservation.FindConflicts(cand, existing)
	return reservation.Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
