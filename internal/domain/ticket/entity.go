package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid ticket status")
	ErrIncompleteAttendee = errors.New("each person must include name, email and phone")
	ErrNoAttendees        = errors.New("at least one person is required")
	ErrMissingEventName   = errors.New("event name is required")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// Person is an attendee or buyer identity.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (p Person) Normalized() Person {
	return Person{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.ToLower(strings.TrimSpace(p.Email)),
		Phone: strings.TrimSpace(p.Phone),
	}
}

func (p Person) IsComplete() bool {
	n := p.Normalized()
	return n.Name != "" && n.Email != "" && n.Phone != ""
}

// ValidateAttendees rejects the batch if any attendee lacks a field. Nothing is partially accepted.
func ValidateAttendees(people []Person) ([]Person, error) {
	if len(people) == 0 {
		return nil, ErrNoAttendees
	}
	out := make([]Person, len(people))
	for i, p := range people {
		if !p.IsComplete() {
			return nil, fmt.Errorf("person %d: %w", i+1, ErrIncompleteAttendee)
		}
		out[i] = p.Normalized()
	}
	return out, nil
}

// Buyer is the purchaser; the phone is optional.
type Buyer struct {
	Name  string
	Email string
	Phone *string
}

type Ticket struct {
	id          uuid.UUID
	buyerName   string
	buyerEmail  string
	buyerPhone  *string
	personName  string
	personEmail string
	personPhone *string
	djName      string
	pricePLN    int64
	status      Status
	eventDate   string
	qrToken     string
	usedAt      *time.Time
	usedBy      *string
	createdAt   time.Time
}

// Issue describes one batch handed to the issuer.
type Issue struct {
	Buyer     Buyer
	EventName string
	PricePLN  int64
	Status    Status
	EventDate string
}

// NewTicket creates an unused ticket for person with a fresh redemption token.
func NewTicket(is Issue, person Person, now time.Time) (*Ticket, error) {
	if strings.TrimSpace(is.EventName) == "" {
		return nil, ErrMissingEventName
	}
	if is.PricePLN < 0 {
		return nil, ErrNegativePrice
	}
	if !is.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	var phone *string
	if p := strings.TrimSpace(person.Phone); p != "" {
		phone = &p
	}

	return &Ticket{
		id:          uuid.New(),
		buyerName:   strings.TrimSpace(is.Buyer.Name),
		buyerEmail:  strings.ToLower(strings.TrimSpace(is.Buyer.Email)),
		buyerPhone:  is.Buyer.Phone,
		personName:  strings.TrimSpace(person.Name),
		personEmail: strings.ToLower(strings.TrimSpace(person.Email)),
		personPhone: phone,
		djName:      strings.TrimSpace(is.EventName),
		pricePLN:    is.PricePLN,
		status:      is.Status,
		eventDate:   is.EventDate,
		qrToken:     token,
		createdAt:   now,
	}, nil
}

func ReconstructTicket(
	id uuid.UUID,
	buyerName, buyerEmail string,
	buyerPhone *string,
	personName, personEmail string,
	personPhone *string,
	djName string,
	pricePLN int64,
	status Status,
	eventDate, qrToken string,
	usedAt *time.Time,
	usedBy *string,
	createdAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		buyerName:   buyerName,
		buyerEmail:  buyerEmail,
		buyerPhone:  buyerPhone,
		personName:  personName,
		personEmail: personEmail,
		personPhone: personPhone,
		djName:      djName,
		pricePLN:    pricePLN,
		status:      status,
		eventDate:   eventDate,
		qrToken:     qrToken,
		usedAt:      usedAt,
		usedBy:      usedBy,
		createdAt:   createdAt,
	}
}

func (t *Ticket) IsUsed() bool {
	return t.usedAt != nil
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) BuyerName() string    { return t.buyerName }
func (t *Ticket) BuyerEmail() string   { return t.buyerEmail }
func (t *Ticket) BuyerPhone() *string  { return t.buyerPhone }
func (t *Ticket) PersonName() string   { return t.personName }
func (t *Ticket) PersonEmail() string  { return t.personEmail }
func (t *Ticket) PersonPhone() *string { return t.personPhone }
func (t *Ticket) DJName() string       { return t.djName }
func (t *Ticket) PricePLN() int64      { return t.pricePLN }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) EventDate() string    { return t.eventDate }
func (t *Ticket) QRToken() string      { return t.qrToken }
func (t *Ticket) UsedAt() *time.Time   { return t.usedAt }
func (t *Ticket) UsedBy() *string      { return t.usedBy }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
