package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/handler/httperr"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/pkg/webhook"
	"macondo-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = 1 << 20
)

type WebhookHandler struct {
	cmds     commands.CoverCommands
	verifier *webhook.Verifier
	logger   *slog.Logger
}

func NewWebhookHandler(cmds commands.CoverCommands, verifier *webhook.Verifier, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, verifier: verifier, logger: logger}
}

// @Summary Payment webhook
// @Description Fulfills a cover intent once the payment provider confirms checkout. Redelivery is harmless.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "t=<unix>,v1=<hmac>"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Router /api/webhooks/payment [post]
func (h *WebhookHandler) Payment(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	if err := h.verifier.Verify(body, c.GetHeader(signatureHeader)); err != nil {
		h.logger.Warn("webhook signature rejected", "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		return
	}

	// the provider adds fields freely, so this decodes leniently
	var event reqdto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}

	if event.Type != reqdto.WebhookCheckoutCompleted {
		c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Ignored: true})
		return
	}

	intentID := event.IntentID()
	if intentID == "" {
		h.logger.Warn("checkout completed without cover intent", "event_id", event.ID)
		c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Ignored: true})
		return
	}

	var sessionID *string
	if event.Data.Object.ID != "" {
		sessionID = &event.Data.Object.ID
	}

	result, err := h.cmds.FulfillIntent(c.Request.Context(), intentID, sessionID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// unknown intents are acknowledged so the provider stops retrying
			h.logger.Warn("webhook for unknown cover intent", "intent_id", intentID)
			c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Ignored: true})
			return
		}
		abortWithUsecaseError(c, err, "Fulfillment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFulfillResult(result))
}
