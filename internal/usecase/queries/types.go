package queries

import (
	"time"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/domain/staff"
	"macondo-backend/internal/domain/ticket"

	"github.com/google/uuid"
)

// TicketView is the full ticket as staff and admins see it
type TicketView struct {
	ID          uuid.UUID  `json:"id"`
	BuyerName   string     `json:"buyer_name"`
	BuyerEmail  string     `json:"buyer_email"`
	BuyerPhone  *string    `json:"buyer_phone,omitempty"`
	PersonName  string     `json:"person_name"`
	PersonEmail string     `json:"person_email"`
	PersonPhone *string    `json:"person_phone,omitempty"`
	DJName      string     `json:"dj_name"`
	PricePLN    int64      `json:"price_pln"`
	Status      string     `json:"status"`
	EventDate   string     `json:"event_date"`
	QRToken     string     `json:"qr_token"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	UsedBy      *string    `json:"used_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PublicTicketView is what the token holder may see
type PublicTicketView struct {
	Status     string     `json:"status"`
	PersonName string     `json:"person_name"`
	DJName     string     `json:"dj_name"`
	EventDate  string     `json:"event_date"`
	QRToken    string     `json:"qr_token"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Date      string    `json:"date"`
	EntryTime *string   `json:"entry_time,omitempty"`
	ExitTime  *string   `json:"exit_time,omitempty"`
	PartySize int       `json:"party_size"`
	Comment   *string   `json:"comment,omitempty"`
	TableID   *string   `json:"table_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type StaffView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CoverConfigView struct {
	DJName             string  `json:"dj_name"`
	PricePLN           int64   `json:"price_pln"`
	Active             bool    `json:"active"`
	Mode               string  `json:"mode"`
	PrivateTitle       *string `json:"private_title,omitempty"`
	PrivateDescription *string `json:"private_description,omitempty"`
	EventName          string  `json:"event_name"`
}

func NewTicketView(t *ticket.Ticket) *TicketView {
	return &TicketView{
		ID:          t.ID(),
		BuyerName:   t.BuyerName(),
		BuyerEmail:  t.BuyerEmail(),
		BuyerPhone:  t.BuyerPhone(),
		PersonName:  t.PersonName(),
		PersonEmail: t.PersonEmail(),
		PersonPhone: t.PersonPhone(),
		DJName:      t.DJName(),
		PricePLN:    t.PricePLN(),
		Status:      t.Status().String(),
		EventDate:   t.EventDate(),
		QRToken:     t.QRToken(),
		UsedAt:      t.UsedAt(),
		UsedBy:      t.UsedBy(),
		CreatedAt:   t.CreatedAt(),
	}
}

func NewTicketViews(ts []*ticket.Ticket) []*TicketView {
	out := make([]*TicketView, len(ts))
	for i, t := range ts {
		out[i] = NewTicketView(t)
	}
	return out
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:        r.ID(),
		Name:      r.Name(),
		Email:     r.Email(),
		Phone:     r.Phone(),
		Date:      r.Date(),
		EntryTime: clockString(r.EntryTime()),
		ExitTime:  clockString(r.ExitTime()),
		PartySize: r.PartySize(),
		Comment:   r.Comment(),
		TableID:   r.TableID(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func NewReservationViews(rs []*reservation.Reservation) []*ReservationView {
	out := make([]*ReservationView, len(rs))
	for i, r := range rs {
		out[i] = NewReservationView(r)
	}
	return out
}

func NewStaffView(m *staff.Member) *StaffView {
	return &StaffView{
		ID:        m.ID(),
		Username:  m.Username(),
		Active:    m.IsActive(),
		CreatedAt: m.CreatedAt(),
	}
}

func clockString(c *reservation.ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
