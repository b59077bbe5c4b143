package commands

import (
	"bytes"
	"fmt"
	"html/template"

	"macondo-backend/internal/domain/reservation"
	"macondo-backend/internal/domain/ticket"
	"macondo-backend/internal/usecase/shared"
)

const emailLayout = `<div style="font-family:Arial,sans-serif;line-height:1.5">{{template "body" .}}` +
	`<p style="margin-top:16px;color:#6b7280;font-size:12px">Macondo Bar Latino</p></div>`

var emailTemplates = map[string]*template.Template{
	"ticket": mustEmail(`{{define "body"}}
<h2 style="color:#92400e;margin:0 0 10px">Ticket Cover - Macondo</h2>
<p>Hola <b>{{.Name}}</b>,</p>
{{if .Paid}}<p>Tu pago fue confirmado. Este es tu ticket para el cover del sótano.</p>
<p><b>DJ:</b> {{.Event}}<br><b>Precio:</b> {{.PricePLN}} PLN</p>
{{else}}<p>Tu invitación para <b>{{.Event}}</b> fue aprobada.</p>{{end}}
<p>Abre este enlace para mostrar tu QR:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>El QR es válido una sola vez.</p>
{{end}}`),
	"private_request": mustEmail(`{{define "body"}}
<h2 style="color:#92400e;margin:0 0 10px">Solicitud de invitación</h2>
<p>Hola <b>{{.Name}}</b>,</p>
<p>Hemos recibido tu solicitud para <b>{{.Event}}</b>.</p>
<p>Tu invitación debe ser aceptada manualmente. Te enviaremos un email con tu QR cuando sea aprobada.</p>
{{end}}`),
	"reservation": mustEmail(`{{define "body"}}
<h2 style="color:#92400e;margin:0 0 10px">Reserva recibida</h2>
<p>Hola <b>{{.Name}}</b>,</p>
<p>Hemos recibido tu reserva para el <b>{{.Date}}</b>{{with .Entry}} a las <b>{{.}}</b>{{end}} ({{.PartySize}} personas).</p>
<p>Te confirmaremos la mesa lo antes posible.</p>
{{end}}`),
}

func mustEmail(body string) *template.Template {
	t := template.Must(template.New("layout").Parse(emailLayout))
	return template.Must(t.Parse(body))
}

func renderEmail(name string, data any) (string, error) {
	t, ok := emailTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type ticketEmailData struct {
	Name     string
	Event    string
	PricePLN int64
	Link     string
	Paid     bool
}

// ticketEmails builds one message per ticket, addressed to its holder.
func ticketEmails(tickets []*ticket.Ticket, baseURL string) ([]shared.Email, error) {
	out := make([]shared.Email, 0, len(tickets))
	for _, t := range tickets {
		body, err := renderEmail("ticket", ticketEmailData{
			Name:     t.PersonName(),
			Event:    t.DJName(),
			PricePLN: t.PricePLN(),
			Link:     ticket.RedemptionLink(baseURL, t.QRToken()),
			Paid:     t.Status() == ticket.StatusPaid,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, shared.Email{
			ToAddress: t.PersonEmail(),
			ToName:    t.PersonName(),
			Subject:   "🎟️ Cover Macondo - " + t.DJName(),
			HTMLBody:  body,
		})
	}
	return out, nil
}

func privateRequestEmails(tickets []*ticket.Ticket) ([]shared.Email, error) {
	out := make([]shared.Email, 0, len(tickets))
	for _, t := range tickets {
		body, err := renderEmail("private_request", ticketEmailData{Name: t.PersonName(), Event: t.DJName()})
		if err != nil {
			return nil, err
		}
		out = append(out, shared.Email{
			ToAddress: t.PersonEmail(),
			ToName:    t.PersonName(),
			Subject:   "📩 Solicitud recibida - " + t.DJName(),
			HTMLBody:  body,
		})
	}
	return out, nil
}

func reservationEmail(r *reservation.Reservation) (shared.Email, error) {
	var entry string
	if r.EntryTime() != nil {
		entry = r.EntryTime().String()
	}
	body, err := renderEmail("reservation", struct {
		Name      string
		Date      string
		Entry     string
		PartySize int
	}{r.Name(), r.Date(), entry, r.PartySize()})
	if err != nil {
		return shared.Email{}, err
	}
	return shared.Email{
		ToAddress: r.Email(),
		ToName:    r.Name(),
		Subject:   "Reserva Macondo - " + r.Date(),
		HTMLBody:  body,
	}, nil
}
