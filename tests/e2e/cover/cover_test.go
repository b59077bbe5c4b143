//go:build e2e

package cover_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/pkg/webhook"
	"macondo-backend/tests/common/authtest"
	"macondo-backend/tests/common/builder"
	"macondo-backend/tests/common/dbtest"
	"macondo-backend/tests/common/httptest"
	"macondo-backend/tests/common/testutil"
	"macondo-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	configURL   = "/api/cover/config"
	checkoutURL = "/api/cover/checkout"
	webhookURL  = "/api/webhooks/payment"
	redeemURL   = "/api/staff/redeem"
)

type coverSuite struct {
	e2e.SharedSuite
	verifier *webhook.Verifier
}

func TestCoverSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(coverSuite))
}

func (s *coverSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.verifier = webhook.NewVerifier(s.Config.Webhook.Secret, s.Config.Webhook.Tolerance)
}

func (s *coverSuite) today() string {
	return time.Now().In(s.Config.Cover.Location()).Format(time.DateOnly)
}

func (s *coverSuite) deliver(t *testing.T, intentID string) *resdto.WebhookResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"type": "checkout.session.completed",
		"data": map[string]any{"object": map[string]any{
			"id":       "cs_test_e2e",
			"metadata": map[string]string{"cover_intent_id": intentID},
		}},
	})
	require.NoError(t, err)

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
		"Content-Type":     "application/json",
		"Stripe-Signature": s.verifier.Header(body, time.Now().Unix()),
	})
	var res resdto.WebhookResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *coverSuite) TestPurchaseFlow() {
	s.Run("checkout then webhook issues one ticket per person exactly once", func() {
		t := s.T()

		var cfg resdto.CoverConfigResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, configURL, nil, ""), http.StatusOK, &cfg)
		require.Equal(t, "Dj Micke", cfg.DJName)
		require.EqualValues(t, 30, cfg.PricePLN)

		dto := builder.NewCheckoutBuilder().WithPeople(builder.Person("Ana"), builder.Person("Luis")).BuildDTO()
		var checkout resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, dto, ""), http.StatusOK, &checkout)
		require.NotEmpty(t, checkout.CoverIntentID)
		require.EqualValues(t, 60, checkout.AmountPLN)
		require.Zero(t, dbtest.CountRows(t, s.DB, "cover_tickets"))

		first := s.deliver(t, checkout.CoverIntentID)
		require.Equal(t, 2, first.Issued)

		again := s.deliver(t, checkout.CoverIntentID)
		require.True(t, again.AlreadyFulfilled)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "cover_tickets"))

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM cover_intents WHERE intent_id = $1", checkout.CoverIntentID).Scan(&status))
		require.Equal(t, "fulfilled", status)
	})

	s.Run("unknown intent is acknowledged without tickets", func() {
		t := s.T()
		res := s.deliver(t, "ci_does_not_exist")
		require.True(t, res.Ignored)
		require.Zero(t, dbtest.CountRows(t, s.DB, "cover_tickets"))
	})

	s.Run("invalid checkouts stage nothing", func() {
		dto := builder.NewCheckoutBuilder().WithPeople(builder.Person("Ana"), builder.Person("Luis")).BuildDTO()
		cases := []struct {
			name string
			muts []func(map[string]any)
		}{
			{name: "no consent", muts: []func(map[string]any){testutil.Field("consentConfirm", false)}},
			{name: "no buyer email", muts: []func(map[string]any){testutil.Field("buyer_email", nil)}},
			{name: "no attendees", muts: []func(map[string]any){testutil.Field("people", []any{})}},
			{name: "second attendee without phone", muts: []func(map[string]any){testutil.Field("people", []any{
				map[string]any{"name": "Ana", "email": "ana@example.com", "phone": "600100200"},
				map[string]any{"name": "Luis", "email": "luis@example.com"},
			})}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				t := s.T()
				body := testutil.DtoMap(t, dto, tc.muts...)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, "")
				require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
				require.Zero(t, dbtest.CountRows(t, s.DB, "cover_intents"))
			})
		}
	})
}

func (s *coverSuite) TestRedemption() {
	redeem := func(t *testing.T, staffToken, qr string) *nethttptest.ResponseRecorder {
		return httptest.PerformStaffRequest(t, s.Router, http.MethodPost, redeemURL, reqdto.RedeemRequest{Token: qr}, staffToken)
	}

	s.Run("first scan admits, repeat inside grace is accepted, later repeat is refused", func() {
		t := s.T()
		staff := authtest.CreateStaffAndLogin(t, s.DB, s.Router, "door1")
		id, qr := dbtest.SeedTicket(t, s.DB, dbtest.TicketSeed{PersonName: "Luis", EventDate: s.today()})

		var first resdto.RedeemResponse
		httptest.AssertSuccessResponse(t, redeem(t, staff, qr), http.StatusOK, &first)
		require.False(t, first.Grace)
		require.Equal(t, id, first.TicketID)
		require.Equal(t, "door1", first.UsedBy)

		var second resdto.RedeemResponse
		httptest.AssertSuccessResponse(t, redeem(t, staff, qr), http.StatusOK, &second)
		require.True(t, second.Grace)
		require.True(t, second.UsedAt.Equal(first.UsedAt))

		_, err := s.DB.Exec(t.Context(), "UPDATE cover_tickets SET used_at = used_at - interval '10 minutes' WHERE id = $1", id)
		require.NoError(t, err)

		body := httptest.AssertErrorResponse(t, redeem(t, staff, qr), http.StatusConflict, "already used")
		var detail resdto.AlreadyUsedDetail
		httptest.DecodeDetail(t, body, &detail)
		require.Equal(t, "door1", detail.UsedBy)
	})

	s.Run("inactive tickets are refused without being consumed", func() {
		t := s.T()
		staff := authtest.CreateStaffAndLogin(t, s.DB, s.Router, "door1")
		id, qr := dbtest.SeedTicket(t, s.DB, dbtest.TicketSeed{Status: ticket.StatusDisabled, EventDate: s.today()})

		httptest.AssertErrorResponse(t, redeem(t, staff, qr), http.StatusBadRequest, "not active")

		var usedAt *time.Time
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT used_at FROM cover_tickets WHERE id = $1", id).Scan(&usedAt))
		require.Nil(t, usedAt)
	})

	s.Run("unknown token", func() {
		t := s.T()
		staff := authtest.CreateStaffAndLogin(t, s.DB, s.Router, "door1")
		httptest.AssertErrorResponse(t, redeem(t, staff, "not-a-ticket"), http.StatusNotFound, "Not found")
	})
}
