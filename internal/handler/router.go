package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"macondo-backend/internal/handler/api"
	"macondo-backend/internal/handler/middleware"
	"macondo-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Cover       *api.CoverHandler
	Webhook     *api.WebhookHandler
	Staff       *api.StaffHandler
	Admin       *api.AdminHandler
}

// NewRouter mounts middleware and routes. rdb may be nil, which disables rate limiting.
func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	rdb *redis.Client,
	logger *slog.Logger,
) {
	setupMiddleware(engine, cfg, logger)
	limit := middleware.NewRateLimit(cfg.RateLimit, rdb, logger)
	setupRoutes(engine, h, authMiddleware, limit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Reservation.Availability},
		})

		cover := apiGroup.Group("/cover")
		addRoutes(cover, []route{
			{Method: http.MethodGet, Path: "/config", Handler: h.Cover.GetConfig},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Cover.Checkout, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/private/register", Handler: h.Cover.RegisterPrivate, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodGet, Path: "/tickets/:token", Handler: h.Cover.GetTicket},
			{Method: http.MethodGet, Path: "/tickets/:token/pdf", Handler: h.Cover.TicketPDF},
		})

		webhooks := apiGroup.Group("/webhooks")
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/payment", Handler: h.Webhook.Payment},
		})

		staff := apiGroup.Group("/staff")
		{
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.StaffLogin, Mw: []gin.HandlerFunc{limit}},
			})

			scanner := staff.Group("")
			scanner.Use(authMiddleware.RequireStaff())
			addRoutes(scanner, []route{
				{Method: http.MethodGet, Path: "/tickets", Handler: h.Staff.ListToday},
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Staff.Redeem, Mw: []gin.HandlerFunc{limit}},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.AdminLogin, Mw: []gin.HandlerFunc{limit}},
			})

			authed := admin.Group("")
			authed.Use(authMiddleware.RequireAdmin())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservation.SetStatus},
				{Method: http.MethodPatch, Path: "/reservations/:id/table", Handler: h.Reservation.AssignTable},

				{Method: http.MethodPut, Path: "/cover/config", Handler: h.Admin.UpdateCoverConfig},
				{Method: http.MethodGet, Path: "/cover/tickets", Handler: h.Admin.ListTickets},
				{Method: http.MethodPost, Path: "/cover/tickets", Handler: h.Admin.IssueManual},
				{Method: http.MethodPost, Path: "/cover/tickets/:id/active", Handler: h.Admin.SetTicketActive},
				{Method: http.MethodPost, Path: "/cover/tickets/:id/reset", Handler: h.Admin.ResetTicket},
				{Method: http.MethodPost, Path: "/cover/tickets/:id/accept", Handler: h.Admin.AcceptPrivate},
				{Method: http.MethodDelete, Path: "/cover/tickets/:id", Handler: h.Admin.DeleteTicket},

				{Method: http.MethodGet, Path: "/staff", Handler: h.Admin.ListStaff},
				{Method: http.MethodPost, Path: "/staff", Handler: h.Admin.CreateStaff},
				{Method: http.MethodPost, Path: "/staff/:username/pin", Handler: h.Admin.ResetStaffPIN},
				{Method: http.MethodPost, Path: "/staff/:username/active", Handler: h.Admin.SetStaffActive},
				{Method: http.MethodDelete, Path: "/staff/:username", Handler: h.Admin.DeleteStaff},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
