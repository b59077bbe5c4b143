package intent

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"macondo-backend/internal/domain/ticket"

	"github.com/google/uuid"
)

var (
	ErrMissingBuyer   = errors.New("buyer name and email are required")
	ErrMissingConsent = errors.New("purchase terms must be accepted")
	ErrInvalidPrice   = errors.New("price must be positive")
	ErrInvalidStatus  = errors.New("invalid intent status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusFulfilled
}

// Intent stages a purchase until the payment provider confirms it.
type Intent struct {
	id               uuid.UUID
	intentID         string
	buyer            ticket.Buyer
	people           []ticket.Person
	djName           string
	pricePLN         int64
	consentMarketing bool
	status           Status
	stripeSessionID  *string
	fulfilledAt      *time.Time
	createdAt        time.Time
}

type NewIntentInput struct {
	Buyer            ticket.Buyer
	People           []ticket.Person
	ConsentConfirm   bool
	ConsentMarketing bool
	DJName           string
	PricePLN         int64
}

func NewIntent(in NewIntentInput, now time.Time) (*Intent, error) {
	name := strings.TrimSpace(in.Buyer.Name)
	email := strings.ToLower(strings.TrimSpace(in.Buyer.Email))
	if name == "" || email == "" {
		return nil, ErrMissingBuyer
	}
	if !in.ConsentConfirm {
		return nil, ErrMissingConsent
	}
	people, err := ticket.ValidateAttendees(in.People)
	if err != nil {
		return nil, err
	}
	if in.PricePLN <= 0 {
		return nil, ErrInvalidPrice
	}
	token, err := ticket.RandomHex(ticket.TokenBytes)
	if err != nil {
		return nil, err
	}

	var phone *string
	if in.Buyer.Phone != nil {
		if p := strings.TrimSpace(*in.Buyer.Phone); p != "" {
			phone = &p
		}
	}

	return &Intent{
		id:               uuid.New(),
		intentID:         token,
		buyer:            ticket.Buyer{Name: name, Email: email, Phone: phone},
		people:           people,
		djName:           strings.TrimSpace(in.DJName),
		pricePLN:         in.PricePLN,
		consentMarketing: in.ConsentMarketing,
		status:           StatusPending,
		createdAt:        now,
	}, nil
}

func ReconstructIntent(
	id uuid.UUID,
	intentID string,
	buyer ticket.Buyer,
	people []ticket.Person,
	djName string,
	pricePLN int64,
	consentMarketing bool,
	status Status,
	stripeSessionID *string,
	fulfilledAt *time.Time,
	createdAt time.Time,
) *Intent {
	return &Intent{
		id:               id,
		intentID:         intentID,
		buyer:            buyer,
		people:           people,
		djName:           djName,
		pricePLN:         pricePLN,
		consentMarketing: consentMarketing,
		status:           status,
		stripeSessionID:  stripeSessionID,
		fulfilledAt:      fulfilledAt,
		createdAt:        createdAt,
	}
}

func (i *Intent) IsFulfilled() bool {
	return i.status == StatusFulfilled
}

func (i *Intent) Quantity() int {
	return len(i.people)
}

// EncodePeople is the JSON snapshot persisted with the intent.
func EncodePeople(people []ticket.Person) ([]byte, error) {
	if people == nil {
		people = []ticket.Person{}
	}
	return json.Marshal(people)
}

func DecodePeople(raw []byte) ([]ticket.Person, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var people []ticket.Person
	if err := json.Unmarshal(raw, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (i *Intent) ID() uuid.UUID            { return i.id }
func (i *Intent) IntentID() string         { return i.intentID }
func (i *Intent) Buyer() ticket.Buyer      { return i.buyer }
func (i *Intent) People() []ticket.Person  { return i.people }
func (i *Intent) DJName() string           { return i.djName }
func (i *Intent) PricePLN() int64          { return i.pricePLN }
func (i *Intent) ConsentMarketing() bool   { return i.consentMarketing }
func (i *Intent) Status() Status           { return i.status }
func (i *Intent) StripeSessionID() *string { return i.stripeSessionID }
func (i *Intent) FulfilledAt() *time.Time  { return i.fulfilledAt }
func (i *Intent) CreatedAt() time.Time     { return i.createdAt }
