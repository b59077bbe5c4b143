package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrInvalidTable     = errors.New("table is required")
)

const DefaultPartySize = 1

type Reservation struct {
	id        uuid.UUID
	name      string
	email     string
	phone     *string
	date      string
	entryTime *ClockTime
	exitTime  *ClockTime
	partySize int
	comment   *string
	tableID   *string
	status    Status
	createdAt time.Time
}

type NewReservationInput struct {
	Name      string
	Email     string
	Phone     *string
	Date      string
	EntryTime *string
	ExitTime  *string
	PartySize *int
	Comment   *string
	TableID   *string
}

// NewReservation validates a customer submission. New reservations start pending.
func NewReservation(in NewReservationInput, now time.Time) (*Reservation, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	entry, err := ParseOptionalClockTime(in.EntryTime)
	if err != nil {
		return nil, err
	}
	exit, err := ParseOptionalClockTime(in.ExitTime)
	if err != nil {
		return nil, err
	}

	partySize := DefaultPartySize
	if in.PartySize != nil {
		partySize = *in.PartySize
	}
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	return &Reservation{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     optionalText(in.Phone),
		date:      date,
		entryTime: entry,
		exitTime:  exit,
		partySize: partySize,
		comment:   optionalText(in.Comment),
		tableID:   optionalText(in.TableID),
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	name, email string,
	phone *string,
	date string,
	entryTime, exitTime *ClockTime,
	partySize int,
	comment, tableID *string,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		date:      date,
		entryTime: entryTime,
		exitTime:  exitTime,
		partySize: partySize,
		comment:   comment,
		tableID:   tableID,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status.HoldsTable()
}

// Window returns the occupied span, or false when there is no entry time to check against.
func (r *Reservation) Window() (Window, bool) {
	if r.entryTime == nil {
		return Window{}, false
	}
	return NewWindow(*r.entryTime, r.exitTime), true
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Name() string          { return r.name }
func (r *Reservation) Email() string         { return r.email }
func (r *Reservation) Phone() *string        { return r.phone }
func (r *Reservation) Date() string          { return r.date }
func (r *Reservation) EntryTime() *ClockTime { return r.entryTime }
func (r *Reservation) ExitTime() *ClockTime  { return r.exitTime }
func (r *Reservation) PartySize() int        { return r.partySize }
func (r *Reservation) Comment() *string      { return r.comment }
func (r *Reservation) TableID() *string      { return r.tableID }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
