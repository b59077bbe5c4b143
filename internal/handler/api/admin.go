package api

import (
	"net/http"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cover     commands.CoverAdminCommands
	tickets   queries.TicketQueries
	staffCmds commands.StaffCommands
	staffQ    queries.StaffQueries
	baseURL   string
}

func NewAdminHandler(
	cover commands.CoverAdminCommands,
	tickets queries.TicketQueries,
	staffCmds commands.StaffCommands,
	staffQ queries.StaffQueries,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		cover:     cover,
		tickets:   tickets,
		staffCmds: staffCmds,
		staffQ:    staffQ,
		baseURL:   cfg.Cover.ResolveBaseURL(),
	}
}

// @Summary Update cover configuration
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateCoverConfigRequest true "Configuration"
// @Success 200 {object} resdto.CoverConfigResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/cover/config [put]
func (h *AdminHandler) UpdateCoverConfig(c *gin.Context) {
	var req reqdto.UpdateCoverConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cfg, err := h.cover.UpdateConfig(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to save cover config")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoverConfig(*cfg))
}

// @Summary List tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Ticket status, or used"
// @Param q query string false "Search names, emails, status and token"
// @Param limit query int false "1..500, default 200"
// @Success 200 {object} resdto.TicketListResponse
// @Router /api/admin/cover/tickets [get]
func (h *AdminHandler) ListTickets(c *gin.Context) {
	var q reqdto.ListTicketsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	views, err := h.tickets.List(c.Request.Context(), queries.TicketFilters{
		Status: q.Status,
		Q:      q.Q,
		Limit:  q.Limit,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketViews(views))
}

// @Summary Issue a manual ticket
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManualIssueRequest true "Holder"
// @Success 201 {object} resdto.IssueResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/cover/tickets [post]
func (h *AdminHandler) IssueManual(c *gin.Context) {
	var req reqdto.ManualIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.cover.IssueManual(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to issue tickets")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueResult(result, h.baseURL))
}

// @Summary Enable or disable a ticket
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.SetTicketActiveRequest true "Active flag"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/cover/tickets/{id}/active [post]
func (h *AdminHandler) SetTicketActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.SetTicketActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.cover.SetTicketActive(c.Request.Context(), id, req.Active)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update ticket")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary Reset a used ticket
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/cover/tickets/{id}/reset [post]
func (h *AdminHandler) ResetTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.cover.ResetTicket(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to reset ticket")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary Accept a private request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/cover/tickets/{id}/accept [post]
func (h *AdminHandler) AcceptPrivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.cover.AcceptPrivate(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to accept ticket")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary Delete a ticket
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/admin/cover/tickets/{id} [delete]
func (h *AdminHandler) DeleteTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cover.DeleteTicket(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete ticket")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List staff accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StaffListResponse
// @Router /api/admin/staff [get]
func (h *AdminHandler) ListStaff(c *gin.Context) {
	views, err := h.staffQ.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list staff")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStaffViews(views))
}

// @Summary Create a staff account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStaffRequest true "Username and PIN"
// @Success 201 {object} resdto.StaffResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/staff [post]
func (h *AdminHandler) CreateStaff(c *gin.Context) {
	var req reqdto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	m, err := h.staffCmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create staff account")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStaffMember(m))
}

// @Summary Reset a staff PIN
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param request body reqdto.ResetStaffPINRequest true "New PIN"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/admin/staff/{username}/pin [post]
func (h *AdminHandler) ResetStaffPIN(c *gin.Context) {
	var req reqdto.ResetStaffPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.staffCmds.ResetPIN(c.Request.Context(), c.Param("username"), req); err != nil {
		abortWithUsecaseError(c, err, "Failed to reset PIN")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Enable or disable a staff account
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param request body reqdto.SetStaffActiveRequest true "Active flag"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/admin/staff/{username}/active [post]
func (h *AdminHandler) SetStaffActive(c *gin.Context) {
	var req reqdto.SetStaffActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.staffCmds.SetActive(c.Request.Context(), c.Param("username"), req.Active); err != nil {
		abortWithUsecaseError(c, err, "Failed to update staff account")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a staff account
// @Tags admin
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/admin/staff/{username} [delete]
func (h *AdminHandler) DeleteStaff(c *gin.Context) {
	if err := h.staffCmds.Delete(c.Request.Context(), c.Param("username")); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete staff account")
		return
	}
	c.Status(http.StatusNoContent)
}
