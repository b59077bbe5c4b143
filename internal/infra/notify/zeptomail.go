package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"
)

var (
	ErrMissingToken = errs.New("missing ZEPTOMAIL_TOKEN")
	ErrMailRejected = errs.New("mail provider rejected message")
)

var tokenPrefix = regexp.MustCompile(`(?i)^zoho-enczapikey\s+`)

type address struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type recipient struct {
	EmailAddress address `json:"email_address"`
}

type zeptoPayload struct {
	From        address     `json:"from"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLBody    string      `json:"htmlbody"`
	TrackOpens  bool        `json:"track_opens"`
	TrackClicks bool        `json:"track_clicks"`
}

// ZeptoMail sends one message per call through the ZeptoMail REST API.
type ZeptoMail struct {
	client   *http.Client
	endpoint string
	token    string
	from     address
	logger   *slog.Logger
}

func NewZeptoMail(cfg config.MailConfig, client *http.Client, logger *slog.Logger) *ZeptoMail {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &ZeptoMail{
		client:   client,
		endpoint: "https://" + strings.TrimSpace(cfg.APIHost) + "/v1.1/email",
		token:    strings.TrimSpace(tokenPrefix.ReplaceAllString(strings.TrimSpace(cfg.Token), "")),
		from:     address{Address: cfg.FromAddress, Name: cfg.FromName},
		logger:   logger,
	}
}

// WithEndpoint overrides the API URL; tests point it at an httptest server.
func (z *ZeptoMail) WithEndpoint(url string) *ZeptoMail {
	z.endpoint = url
	return z
}

func (z *ZeptoMail) Dispatch(ctx context.Context, email shared.Email) error {
	if z.token == "" {
		return errs.Mark(ErrMissingToken, errs.ErrUpstream)
	}

	name := email.ToName
	if name == "" {
		name = email.ToAddress
	}
	body, err := json.Marshal(zeptoPayload{
		From:        z.from,
		To:          []recipient{{EmailAddress: address{Address: email.ToAddress, Name: name}}},
		Subject:     email.Subject,
		HTMLBody:    email.HTMLBody,
		TrackOpens:  true,
		TrackClicks: true,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Zoho-enczapikey "+z.token)

	resp, err := z.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "mail request failed"), errs.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		txt, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		err := errs.Wrap(ErrMailRejected, fmt.Sprintf("zeptomail %d: %s", resp.StatusCode, strings.TrimSpace(string(txt))))
		return errs.Mark(err, errs.ErrUpstream)
	}

	z.logger.Debug("email sent", "to", email.ToAddress, "subject", email.Subject)
	return nil
}
