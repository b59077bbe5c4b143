package components

import (
	"macondo-backend/internal/handler"
	"macondo-backend/internal/handler/api"
	"macondo-backend/internal/handler/middleware"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/webhook"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewWebhookVerifier,
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewCoverHandler,
		api.NewWebhookHandler,
		api.NewStaffHandler,
		api.NewAdminHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookVerifier(cfg config.Config) *webhook.Verifier {
	return webhook.NewVerifier(cfg.Webhook.Secret, cfg.Webhook.Tolerance)
}

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	cover *api.CoverHandler,
	hook *api.WebhookHandler,
	staff *api.StaffHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Cover:       cover,
		Webhook:     hook,
		Staff:       staff,
		Admin:       admin,
	}
}
