package ticketpdf

import (
	"bytes"
	"fmt"

	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/pkg/errs"

	"github.com/phpdave11/gofpdf"
)

// Render produces a one-page printable ticket. link is the redemption URL printed under the token.
func Render(t *ticket.Ticket, eventName, link string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Macondo cover", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "MACONDO BAR LATINO")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(eventName))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Fecha    : " + t.EventDate(),
		"Persona  : " + t.PersonName(),
		"Email    : " + t.PersonEmail(),
		"Estado   : " + statusLabel(t),
		fmt.Sprintf("Precio   : %d PLN", t.PricePLN()),
	} {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Courier", "B", 11)
	pdf.MultiCell(0, 6, t.QRToken(), "1", "C", false)
	if link != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, link, "", "C", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Una entrada por persona. Muestra este código en la puerta."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render ticket pdf")
	}
	return buf.Bytes(), nil
}

func statusLabel(t *ticket.Ticket) string {
	if used := t.UsedAt(); used != nil {
		return "usada " + used.Format("2006-01-02 15:04")
	}
	return t.Status().String()
}
