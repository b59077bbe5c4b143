//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"macondo-backend/internal/infra/notify"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mailConfig(token string) config.MailConfig {
	return config.MailConfig{
		Token:       token,
		APIHost:     "api.zeptomail.eu",
		FromAddress: "cover@macondo.pl",
		FromName:    "Macondo Bar Latino",
		Timeout:     time.Second,
	}
}

var ticketEmail = shared.Email{
	ToAddress: "ana@example.com",
	Subject:   "Your cover ticket",
	HTMLBody:  "<p>See you tonight</p>",
}

func TestZeptoMailDispatch(t *testing.T) {
	t.Run("posts the provider payload with the api key header", func(t *testing.T) {
		var (
			gotAuth string
			gotBody map[string]any
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		z := notify.NewZeptoMail(mailConfig("Zoho-enczapikey abc123"), srv.Client(), quietLogger()).WithEndpoint(srv.URL)
		require.NoError(t, z.Dispatch(context.Background(), ticketEmail))

		assert.Equal(t, "Zoho-enczapikey abc123", gotAuth)
		assert.Equal(t, "Your cover ticket", gotBody["subject"])
		assert.Equal(t, "<p>See you tonight</p>", gotBody["htmlbody"])
		assert.Equal(t, true, gotBody["track_opens"])

		from := gotBody["from"].(map[string]any)
		assert.Equal(t, "cover@macondo.pl", from["address"])

		to := gotBody["to"].([]any)
		require.Len(t, to, 1)
		addr := to[0].(map[string]any)["email_address"].(map[string]any)
		assert.Equal(t, "ana@example.com", addr["address"])
		// falls back to the address when no name is given
		assert.Equal(t, "ana@example.com", addr["name"])
	})

	t.Run("non-2xx is an upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		z := notify.NewZeptoMail(mailConfig("abc123"), srv.Client(), quietLogger()).WithEndpoint(srv.URL)
		err := z.Dispatch(context.Background(), ticketEmail)
		require.Error(t, err)
		assert.True(t, errs.Is(err, notify.ErrMailRejected))
		assert.True(t, errs.Is(err, errs.ErrUpstream))
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("missing token fails before any request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
		defer srv.Close()

		z := notify.NewZeptoMail(mailConfig("  "), srv.Client(), quietLogger()).WithEndpoint(srv.URL)
		err := z.Dispatch(context.Background(), ticketEmail)
		assert.True(t, errs.Is(err, notify.ErrMissingToken))
		assert.True(t, errs.Is(err, errs.ErrUpstream))
		assert.False(t, called)
	})
}

type fakePublisher struct {
	err     error
	body    []byte
	attempt int
}

func (p *fakePublisher) Publish(_ context.Context, body []byte, attempt int) error {
	p.body, p.attempt = body, attempt
	return p.err
}

func TestQueueDispatcher(t *testing.T) {
	t.Run("enqueues the first attempt", func(t *testing.T) {
		pub := &fakePublisher{}
		require.NoError(t, notify.NewQueueDispatcher(pub).Dispatch(context.Background(), ticketEmail))

		assert.Equal(t, 1, pub.attempt)
		var got shared.Email
		require.NoError(t, json.Unmarshal(pub.body, &got))
		assert.Equal(t, ticketEmail, got)
	})

	t.Run("broker failure is upstream", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("channel closed")}
		err := notify.NewQueueDispatcher(pub).Dispatch(context.Background(), ticketEmail)
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})
}

func TestLogDispatcher(t *testing.T) {
	assert.NoError(t, notify.NewLogDispatcher(quietLogger()).Dispatch(context.Background(), ticketEmail))
}
