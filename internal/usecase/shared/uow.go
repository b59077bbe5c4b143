package shared

import (
	"context"
	"time"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/intent"
	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/domain/staff"
	"macondo-backend/internal/domain/ticket"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Direct: Repositories outside a transaction; every call is its own implicit transaction
	Direct() Tx
}

type Tx interface {
	Reservations() ReservationRepository
	Tickets() TicketRepository
	Intents() IntentRepository
	CoverConfig() CoverConfigRepository
	Staff() StaffRepository
	Admins() AdminRepository
	Clients() ClientRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListActiveForTable returns pending and confirmed reservations on one table and date.
	ListActiveForTable(ctx context.Context, date, tableID string) ([]*reservation.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
	AssignTable(ctx context.Context, id uuid.UUID, tableID *string) (*reservation.Reservation, error)
}

type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	FindByToken(ctx context.Context, token string) (*ticket.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*ticket.Ticket, error)
	// MarkUsed sets used_at/used_by only while used_at is still NULL. It reports whether this call won.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time, usedBy string) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status ticket.Status) (*ticket.Ticket, error)
	ResetUsed(ctx context.Context, id uuid.UUID, status ticket.Status) (*ticket.Ticket, error)
	// AcceptPrivate moves an unused private_pending ticket to manual. nil means the predicate failed.
	AcceptPrivate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type IntentRepository interface {
	Create(ctx context.Context, in *intent.Intent) error
	FindByIntentID(ctx context.Context, intentID string) (*intent.Intent, error)
	// MarkFulfilled flips pending to fulfilled in one conditional update. It reports whether this call won.
	MarkFulfilled(ctx context.Context, intentID string, sessionID *string, at time.Time) (bool, error)
}

type CoverConfigRepository interface {
	// Current returns nil when nothing has been configured.
	Current(ctx context.Context) (*cover.Config, error)
	Save(ctx context.Context, cfg cover.Config) error
}

type StaffRepository interface {
	Create(ctx context.Context, m *staff.Member) error
	FindByUsername(ctx context.Context, username string) (*staff.Member, error)
	List(ctx context.Context, limit int) ([]*staff.Member, error)
	UpdatePINHash(ctx context.Context, username, pinHash string) (bool, error)
	SetActive(ctx context.Context, username string, active bool) (bool, error)
	Delete(ctx context.Context, username string) (bool, error)
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*AdminRecord, error)
	IsAllowed(ctx context.Context, email string) (bool, error)
}

type ClientRepository interface {
	Upsert(ctx context.Context, c ClientRecord) error
}
