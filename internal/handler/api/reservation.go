package api

import (
	"net/http"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	checker commands.ConflictChecker
	q       queries.ReservationQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	checker commands.ConflictChecker,
	q queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, checker: checker, q: q}
}

// @Summary Create reservation
// @Description Book a table. A reservation overlapping another on the same table (with buffer) is refused.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		OK:          true,
		Reservation: resdto.FromReservation(result.Reservation),
	})
}

// @Summary Check availability
// @Description Advisory check of a table slot. Without a table or entry time every slot is available.
// @Tags reservations
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param entry_time query string false "HH:MM"
// @Param exit_time query string false "HH:MM"
// @Param table_id query string false "Table"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/availability [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	cand, err := q.ToCandidate()
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrValidation), "Invalid query")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(h.checker.Check(c.Request.Context(), cand)))
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD"
// @Param status query string false "pending, confirmed or cancelled"
// @Param limit query int false "1..500"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/admin/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), queries.ReservationFilters{
		Date:   q.Date,
		Status: q.Status,
		Limit:  q.Limit,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Set reservation status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SetReservationStatusRequest true "Status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/reservations/{id}/status [patch]
func (h *ReservationHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.SetReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.cmds.SetStatus(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Assign table
// @Description Assigning runs the conflict check, ignoring the reservation itself.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AssignTableRequest true "Table"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/reservations/{id}/table [patch]
func (h *ReservationHandler) AssignTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.AssignTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.cmds.AssignTable(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to assign table")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
