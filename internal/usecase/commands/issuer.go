package commands

import (
	"strings"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/errs"
)

var (
	ErrMissingBuyer   = errs.Validation("missing buyer_name/buyer_email")
	ErrMissingConsent = errs.Validation("missing consentConfirm")
)

// IssueResult lists the tickets written for one request, in attendee order.
type IssueResult struct {
	Tickets   []*ticket.Ticket
	EventName string
	Emailed   int
}

// buildTickets makes one ticket per attendee. Either every ticket is built or none is.
func buildTickets(is ticket.Issue, people []ticket.Person, now time.Time) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(people))
	for _, p := range people {
		t, err := ticket.NewTicket(is, p, now)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// validatePurchase runs the checks shared by checkout and private registration, before any
// store access.
func validatePurchase(buyer ticket.Buyer, consent bool, people []ticket.Person) ([]ticket.Person, error) {
	if strings.TrimSpace(buyer.Name) == "" || strings.TrimSpace(buyer.Email) == "" {
		return nil, ErrMissingBuyer
	}
	if !consent {
		return nil, ErrMissingConsent
	}
	valid, err := ticket.ValidateAttendees(people)
	if err != nil {
		return nil, validation(err)
	}
	return valid, nil
}
