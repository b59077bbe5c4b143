package api

import (
	"net/http"

	"macondo-backend/internal/domain/ticket"
	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/infra/ticketpdf"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CoverHandler struct {
	cmds    commands.CoverCommands
	q       queries.CoverQueries
	tickets queries.TicketQueries
	baseURL string
}

func NewCoverHandler(
	cmds commands.CoverCommands,
	q queries.CoverQueries,
	tickets queries.TicketQueries,
	cfg config.Config,
) *CoverHandler {
	return &CoverHandler{
		cmds:    cmds,
		q:       q,
		tickets: tickets,
		baseURL: cfg.Cover.ResolveBaseURL(),
	}
}

// @Summary Cover configuration
// @Tags cover
// @Produce json
// @Success 200 {object} resdto.CoverConfigResponse
// @Router /api/cover/config [get]
func (h *CoverHandler) GetConfig(c *gin.Context) {
	view, err := h.q.GetConfig(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load cover config")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoverConfigView(view))
}

// @Summary Stage checkout
// @Description Validates the attendees and records a pending intent. Tickets appear only after payment.
// @Tags cover
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Buyer and attendees"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cover/checkout [post]
func (h *CoverHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.StageCheckout(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to start checkout")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Register for a private event
// @Tags cover
// @Accept json
// @Produce json
// @Param request body reqdto.PrivateRegisterRequest true "Buyer and attendees"
// @Success 200 {object} resdto.IssueResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cover/private/register [post]
func (h *CoverHandler) RegisterPrivate(c *gin.Context) {
	var req reqdto.PrivateRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.RegisterPrivate(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to register")
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssueResult(result, h.baseURL))
}

// @Summary Ticket by token
// @Description Shows only the ticket the token names.
// @Tags cover
// @Produce json
// @Param token path string true "QR token"
// @Success 200 {object} resdto.PublicTicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cover/tickets/{token} [get]
func (h *CoverHandler) GetTicket(c *gin.Context) {
	t, err := h.tickets.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load ticket")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicTicket(t, h.baseURL))
}

// @Summary Printable ticket
// @Tags cover
// @Produce application/pdf
// @Param token path string true "QR token"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /api/cover/tickets/{token}/pdf [get]
func (h *CoverHandler) TicketPDF(c *gin.Context) {
	t, err := h.tickets.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load ticket")
		return
	}

	doc, err := ticketpdf.Render(t, t.DJName(), ticket.RedemptionLink(h.baseURL, t.QRToken()))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to render ticket")
		return
	}
	c.Header("Content-Disposition", `inline; filename="macondo-`+t.EventDate()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
