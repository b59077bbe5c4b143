//go:build unit || e2e

package builder

import (
	"strings"
	"time"

	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

type CheckoutBuilder struct {
	req reqdto.CheckoutRequest
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{req: reqdto.CheckoutRequest{
		BuyerName:        "Ana",
		BuyerEmail:       "ana@example.com",
		People:           []reqdto.PersonRequest{Person("Ana")},
		ConsentConfirm:   true,
		ConsentMarketing: false,
	}}
}

// Person is a complete attendee named name.
func Person(name string) reqdto.PersonRequest {
	return reqdto.PersonRequest{Name: name, Email: strings.ToLower(name) + "@example.com", Phone: "600100200"}
}

func (b *CheckoutBuilder) WithPeople(people ...reqdto.PersonRequest) *CheckoutBuilder {
	b.req.People = people
	return b
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CheckoutRequest {
	return b.req
}

// BuildTicket is an issued ticket for the first attendee.
func (b *CheckoutBuilder) BuildTicket(t require.TestingT, status ticket.Status, now time.Time) *ticket.Ticket {
	p := b.req.People[0]
	tk, err := ticket.NewTicket(ticket.Issue{
		Buyer:     ticket.Buyer{Name: b.req.BuyerName, Email: b.req.BuyerEmail},
		EventName: "Dj Micke",
		PricePLN:  30,
		Status:    status,
		EventDate: now.Format(time.DateOnly),
	}, ticket.Person{Name: p.Name, Email: p.Email, Phone: p.Phone}, now)
	require.NoError(t, err)
	return tk
}
