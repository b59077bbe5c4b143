package request

import (
	"strings"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/patch"
)

type PersonRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutRequest struct {
	BuyerName        string          `json:"buyer_name"`
	BuyerEmail       string          `json:"buyer_email"`
	BuyerPhone       *string         `json:"buyer_phone,omitempty"`
	People           []PersonRequest `json:"people"`
	ConsentConfirm   bool            `json:"consentConfirm"`
	ConsentMarketing bool            `json:"consentMarketing"`
}

func (r CheckoutRequest) Buyer() ticket.Buyer {
	return toBuyer(r.BuyerName, r.BuyerEmail, r.BuyerPhone)
}

func (r CheckoutRequest) Attendees() []ticket.Person {
	return toPeople(r.People)
}

// PrivateRegisterRequest has the checkout shape; registration is free.
type PrivateRegisterRequest = CheckoutRequest

type ManualIssueRequest struct {
	PersonName  string  `json:"person_name"`
	PersonEmail string  `json:"person_email"`
	PersonPhone string  `json:"person_phone"`
	EventDate   *string `json:"event_date,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r ManualIssueRequest) Person() ticket.Person {
	return ticket.Person{Name: r.PersonName, Email: r.PersonEmail, Phone: r.PersonPhone}
}

type SetTicketActiveRequest struct {
	Active bool `json:"active"`
}

type UpdateCoverConfigRequest struct {
	DJName             string  `json:"dj_name"`
	PricePLN           int64   `json:"price_pln"`
	Active             *bool   `json:"active,omitempty"`
	Mode               string  `json:"mode"`
	PrivateTitle       *string `json:"private_title,omitempty"`
	PrivateDescription *string `json:"private_description,omitempty"`
}

func (r UpdateCoverConfigRequest) ToInput() cover.UpdateInput {
	return cover.UpdateInput{
		DJName:             r.DJName,
		PricePLN:           r.PricePLN,
		Active:             patch.Coalesce(r.Active, true),
		Mode:               r.Mode,
		PrivateTitle:       r.PrivateTitle,
		PrivateDescription: r.PrivateDescription,
	}
}

type ListTicketsQuery struct {
	Status string `form:"status"`
	Q      string `form:"q"`
	Limit  int    `form:"limit"`
}

type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

const WebhookCheckoutCompleted = "checkout.session.completed"

func (e WebhookEvent) IntentID() string {
	return strings.TrimSpace(e.Data.Object.Metadata["cover_intent_id"])
}

func toBuyer(name, email string, phone *string) ticket.Buyer {
	return ticket.Buyer{Name: name, Email: email, Phone: phone}
}

func toPeople(in []PersonRequest) []ticket.Person {
	out := make([]ticket.Person, len(in))
	for i, p := range in {
		out[i] = ticket.Person{Name: p.Name, Email: p.Email, Phone: p.Phone}
	}
	return out
}
