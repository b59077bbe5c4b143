package uow

import (
	"context"
	"log/slog"

	"macondo-backend/internal/infra/repository"
	"macondo-backend/internal/infra/repository/converter"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/usecase/shared"
)

// TransactionalStore is a store that can also run a callback atomically, such as store.Memory.
type TransactionalStore interface {
	store.Store
	store.Transactor
}

// StoreUoW runs units of work on any TransactionalStore.
type StoreUoW struct {
	db     TransactionalStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewStoreUoW(db TransactionalStore, clk clock.Clock, logger *slog.Logger) *StoreUoW {
	return &StoreUoW{db: db, clock: clk, logger: logger}
}

func (u *StoreUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.db.Within(ctx, func(ctx context.Context, s store.Store) error {
		return fn(ctx, newStoreTx(s, u.clock, u.logger))
	})
}

func (u *StoreUoW) Direct() shared.Tx {
	return newStoreTx(u.db, u.clock, u.logger)
}

type storeTx struct {
	db     store.Store
	clock  clock.Clock
	logger *slog.Logger

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	ticketRepo      shared.TicketRepository
	intentRepo      shared.IntentRepository
	coverConfigRepo shared.CoverConfigRepository
	staffRepo       shared.StaffRepository
	adminRepo       shared.AdminRepository
	clientRepo      shared.ClientRepository
}

func newStoreTx(db store.Store, clk clock.Clock, logger *slog.Logger) *storeTx {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeTx{db: db, clock: clk, logger: logger}
}

func (t *storeTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.db, t.logger)
	}
	return t.reservationRepo
}

func (t *storeTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.db, t.logger)
	}
	return t.ticketRepo
}

func (t *storeTx) Intents() shared.IntentRepository {
	if t.intentRepo == nil {
		t.intentRepo = repository.NewIntentRepository(t.db, t.logger)
	}
	return t.intentRepo
}

func (t *storeTx) CoverConfig() shared.CoverConfigRepository {
	if t.coverConfigRepo == nil {
		t.coverConfigRepo = repository.NewCoverConfigRepository(t.db, t.logger)
	}
	return t.coverConfigRepo
}

func (t *storeTx) Staff() shared.StaffRepository {
	if t.staffRepo == nil {
		t.staffRepo = repository.NewStaffRepository(t.db, t.logger)
	}
	return t.staffRepo
}

func (t *storeTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.db, t.logger)
	}
	return t.adminRepo
}

func (t *storeTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.db, t.clock, t.logger)
	}
	return t.clientRepo
}

// NewMemoryUoW backs every repository with an in-process store carrying the same unique keys as the schema.
func NewMemoryUoW(clk clock.Clock, logger *slog.Logger) *StoreUoW {
	mem := store.NewMemory().
		WithUnique(converter.TicketTable, converter.ColQRToken).
		WithUnique(converter.IntentTable, converter.ColIntentID).
		WithUnique(converter.StaffTable, converter.ColUsername).
		WithUnique(converter.AdminTable, converter.ColEmail).
		WithUnique(converter.ClientTable, converter.ColEmail)
	return NewStoreUoW(mem, clk, logger)
}
