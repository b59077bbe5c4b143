package api

import (
	"net/http"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/handler/httperr"
	"macondo-backend/internal/handler/middleware"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the door scanner.
type StaffHandler struct {
	redeem  commands.RedemptionCommands
	tickets queries.TicketQueries
}

func NewStaffHandler(redeem commands.RedemptionCommands, tickets queries.TicketQueries) *StaffHandler {
	return &StaffHandler{redeem: redeem, tickets: tickets}
}

// @Summary Today's tickets
// @Tags staff
// @Produce json
// @Security StaffAuth
// @Success 200 {object} resdto.TicketListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/staff/tickets [get]
func (h *StaffHandler) ListToday(c *gin.Context) {
	views, err := h.tickets.ListToday(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketViews(views))
}

// @Summary Redeem ticket
// @Description Admits the holder once. A repeat scan within the grace window succeeds with grace=true.
// @Tags staff
// @Accept json
// @Produce json
// @Security StaffAuth
// @Param request body reqdto.RedeemRequest true "Scanned token"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/redeem [post]
func (h *StaffHandler) Redeem(c *gin.Context) {
	username, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.redeem.Redeem(c.Request.Context(), req.Token, username)
	if err != nil {
		abortWithUsecaseError(c, err, "Redemption failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}
