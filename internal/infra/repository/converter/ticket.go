package converter

import (
	"encoding/json"

	"macondo-backend/internal/domain/intent"
	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/pgconv"
)

const (
	TicketTable = "cover_tickets"
	IntentTable = "cover_intents"

	ColQRToken   = "qr_token"
	ColUsedAt    = "used_at"
	ColUsedBy    = "used_by"
	ColEventDate = "event_date"
	ColPricePLN  = "price_pln"
	ColIntentID  = "intent_id"
)

func TicketToRow(t *ticket.Ticket) store.Row {
	return store.Row{
		ColID:          t.ID().String(),
		"buyer_name":   t.BuyerName(),
		"buyer_email":  t.BuyerEmail(),
		"buyer_phone":  nullable(t.BuyerPhone()),
		"person_name":  t.PersonName(),
		"person_email": t.PersonEmail(),
		"person_phone": nullable(t.PersonPhone()),
		"dj_name":      t.DJName(),
		ColPricePLN:    t.PricePLN(),
		ColStatus:      t.Status().String(),
		ColEventDate:   t.EventDate(),
		ColQRToken:     t.QRToken(),
		ColUsedAt:      nullable(t.UsedAt()),
		ColUsedBy:      nullable(t.UsedBy()),
		ColCreatedAt:   t.CreatedAt(),
	}
}

func TicketFromRow(row store.Row) (*ticket.Ticket, error) {
	status, err := ticket.ParseStatus(pgconv.String(row[ColStatus]))
	if err != nil {
		return nil, errs.Wrap(err, "stored ticket status")
	}
	return ticket.ReconstructTicket(
		pgconv.UUID(row[ColID]),
		pgconv.String(row["buyer_name"]),
		pgconv.String(row["buyer_email"]),
		pgconv.StringPtr(row["buyer_phone"]),
		pgconv.String(row["person_name"]),
		pgconv.String(row["person_email"]),
		pgconv.StringPtr(row["person_phone"]),
		pgconv.String(row["dj_name"]),
		pgconv.Int64(row[ColPricePLN]),
		status,
		pgconv.Date(row[ColEventDate]),
		pgconv.String(row[ColQRToken]),
		pgconv.TimePtr(row[ColUsedAt]),
		pgconv.StringPtr(row[ColUsedBy]),
		pgconv.Time(row[ColCreatedAt]),
	), nil
}

func TicketsFromRows(rows []store.Row) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		t, err := TicketFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func IntentToRow(in *intent.Intent) (store.Row, error) {
	people, err := intent.EncodePeople(in.People())
	if err != nil {
		return nil, errs.Wrap(err, "encode people")
	}
	buyer := in.Buyer()
	return store.Row{
		ColID:               in.ID().String(),
		ColIntentID:         in.IntentID(),
		"buyer_name":        buyer.Name,
		"buyer_email":       buyer.Email,
		"buyer_phone":       nullable(buyer.Phone),
		"people":            people,
		"dj_name":           in.DJName(),
		ColPricePLN:         in.PricePLN(),
		"consent_marketing": in.ConsentMarketing(),
		ColStatus:           string(in.Status()),
		"stripe_session_id": nullable(in.StripeSessionID()),
		"fulfilled_at":      nullable(in.FulfilledAt()),
		ColCreatedAt:        in.CreatedAt(),
	}, nil
}

func IntentFromRow(row store.Row) (*intent.Intent, error) {
	raw, err := jsonBytes(row["people"])
	if err != nil {
		return nil, errs.Wrap(err, "stored people")
	}
	people, err := intent.DecodePeople(raw)
	if err != nil {
		return nil, errs.Wrap(err, "stored people")
	}
	status := intent.Status(pgconv.String(row[ColStatus]))
	if !status.IsValid() {
		return nil, intent.ErrInvalidStatus
	}
	return intent.ReconstructIntent(
		pgconv.UUID(row[ColID]),
		pgconv.String(row[ColIntentID]),
		ticket.Buyer{
			Name:  pgconv.String(row["buyer_name"]),
			Email: pgconv.String(row["buyer_email"]),
			Phone: pgconv.StringPtr(row["buyer_phone"]),
		},
		people,
		pgconv.String(row["dj_name"]),
		pgconv.Int64(row[ColPricePLN]),
		pgconv.Bool(row["consent_marketing"]),
		status,
		pgconv.StringPtr(row["stripe_session_id"]),
		pgconv.TimePtr(row["fulfilled_at"]),
		pgconv.Time(row[ColCreatedAt]),
	), nil
}

// jsonBytes accepts raw JSON from the memory store and decoded jsonb values from pgx.
func jsonBytes(v any) ([]byte, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	default:
		return json.Marshal(t)
	}
}
