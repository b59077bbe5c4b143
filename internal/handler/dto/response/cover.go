package response

import (
	"time"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
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

type TicketListResponse struct {
	Tickets []*TicketResponse `json:"tickets"`
}

type PublicTicketResponse struct {
	Status     string     `json:"status"`
	PersonName string     `json:"person_name"`
	DJName     string     `json:"dj_name"`
	EventDate  string     `json:"event_date"`
	QRToken    string     `json:"qr_token"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	Link       string     `json:"link"`
}

type CoverConfigResponse struct {
	DJName             string  `json:"dj_name"`
	PricePLN           int64   `json:"price_pln"`
	Active             bool    `json:"active"`
	Mode               string  `json:"mode"`
	PrivateTitle       *string `json:"private_title,omitempty"`
	PrivateDescription *string `json:"private_description,omitempty"`
	EventName          string  `json:"event_name"`
}

type CheckoutResponse struct {
	CoverIntentID string `json:"cover_intent_id"`
	DJName        string `json:"dj_name"`
	PricePLN      int64  `json:"price_pln"`
	Quantity      int    `json:"quantity"`
	AmountPLN     int64  `json:"amount_pln"`
}

// IssuedTicket is what a buyer or admin gets back right after issuing, so the link survives a failed email.
type IssuedTicket struct {
	ID         uuid.UUID `json:"id"`
	PersonName string    `json:"person_name"`
	Status     string    `json:"status"`
	QRToken    string    `json:"qr_token"`
	Link       string    `json:"link,omitempty"`
}

type IssueResponse struct {
	OK        bool            `json:"ok"`
	EventName string          `json:"event_name,omitempty"`
	Tickets   []*IssuedTicket `json:"tickets"`
	Emailed   int             `json:"emailed"`
}

type WebhookResponse struct {
	Received         bool `json:"received"`
	Ignored          bool `json:"ignored,omitempty"`
	AlreadyFulfilled bool `json:"already_fulfilled,omitempty"`
	Issued           int  `json:"issued,omitempty"`
}

type RedeemResponse struct {
	OK         bool      `json:"ok"`
	TicketID   uuid.UUID `json:"ticket_id"`
	UsedAt     time.Time `json:"used_at"`
	UsedBy     string    `json:"used_by"`
	Grace      bool      `json:"grace"`
	PersonName string    `json:"person_name"`
	DJName     string    `json:"dj_name"`
	EventDate  string    `json:"event_date"`
}

// AlreadyUsedDetail is the 409 detail for a ticket admitted earlier.
type AlreadyUsedDetail struct {
	UsedAt time.Time `json:"used_at"`
	UsedBy string    `json:"used_by"`
}

func FromTicketViews(vs []*queries.TicketView) *TicketListResponse {
	return &TicketListResponse{Tickets: copyAll[TicketResponse](vs)}
}

func FromTicket(t *ticket.Ticket) *TicketResponse {
	return copyTo[TicketResponse](queries.NewTicketView(t))
}

func FromPublicTicket(t *ticket.Ticket, baseURL string) *PublicTicketResponse {
	return &PublicTicketResponse{
		Status:     t.Status().String(),
		PersonName: t.PersonName(),
		DJName:     t.DJName(),
		EventDate:  t.EventDate(),
		QRToken:    t.QRToken(),
		UsedAt:     t.UsedAt(),
		Link:       ticket.RedemptionLink(baseURL, t.QRToken()),
	}
}

func FromCoverConfigView(v *queries.CoverConfigView) *CoverConfigResponse {
	return copyTo[CoverConfigResponse](v)
}

func FromCoverConfig(cfg cover.Config) *CoverConfigResponse {
	return FromCoverConfigView(queries.NewCoverConfigView(cfg))
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CoverIntentID: r.IntentID,
		DJName:        r.DJName,
		PricePLN:      r.PricePLN,
		Quantity:      r.Quantity,
		AmountPLN:     r.AmountPLN,
	}
}

func FromIssueResult(r *commands.IssueResult, baseURL string) *IssueResponse {
	return &IssueResponse{
		OK:        true,
		EventName: r.EventName,
		Tickets:   issuedTickets(r.Tickets, baseURL),
		Emailed:   r.Emailed,
	}
}

func FromFulfillResult(r *commands.FulfillResult) *WebhookResponse {
	return &WebhookResponse{
		Received:         true,
		AlreadyFulfilled: r.AlreadyFulfilled,
		Issued:           len(r.Tickets),
	}
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	out := copyTo[RedeemResponse](r)
	out.OK = true
	return out
}

func issuedTickets(ts []*ticket.Ticket, baseURL string) []*IssuedTicket {
	out := make([]*IssuedTicket, len(ts))
	for i, t := range ts {
		out[i] = &IssuedTicket{
			ID:         t.ID(),
			PersonName: t.PersonName(),
			Status:     t.Status().String(),
			QRToken:    t.QRToken(),
		}
		// private requests get their link only once an admin accepts them
		if t.Status() != ticket.StatusPrivatePending {
			out[i].Link = ticket.RedemptionLink(baseURL, t.QRToken())
		}
	}
	return out
}
