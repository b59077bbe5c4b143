//go:build unit

package ticketpdf_test

import (
	"bytes"
	"testing"
	"time"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/infra/ticketpdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tk, err := ticket.NewTicket(ticket.Issue{
		Buyer:     ticket.Buyer{Name: "Ana", Email: "ana@example.com"},
		EventName: "Dj Micke",
		PricePLN:  30,
		Status:    ticket.StatusPaid,
		EventDate: "2026-03-14",
	}, ticket.Person{Name: "José Núñez", Email: "jose@example.com", Phone: "+48 600 100 200"}, time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	out, err := ticketpdf.Render(tk, "Dj Micke", ticket.RedemptionLink("https://macondo.test", tk.QRToken()))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
