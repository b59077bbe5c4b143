package shared

import (
	"time"

	"macondo-backend/internal/domain/ticket"
)

type ReservationFilter struct {
	Date   string
	Status string
	Limit  int
}

type TicketFilter struct {
	// Status accepts a ticket status or "used" for any redeemed ticket
	Status    string
	EventDate string
	Limit     int
}

const TicketFilterUsed = "used"

// AdminRecord is an allow-list entry.
type AdminRecord struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type ClientRecord struct {
	Email            string
	Name             string
	Phone            *string
	ConsentMarketing bool
}

func ClientFromTicket(t *ticket.Ticket, consentMarketing bool) ClientRecord {
	return ClientRecord{
		Email:            t.PersonEmail(),
		Name:             t.PersonName(),
		Phone:            t.PersonPhone(),
		ConsentMarketing: consentMarketing,
	}
}
