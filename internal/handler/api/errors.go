package api

import (
	"net/http"

	"macondo-backend/internal/domain/ticket"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/handler/httperr"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// abortWithUsecaseError maps the error taxonomy onto HTTP. fallback is the message for unexpected failures.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	var notAvailable *commands.NotAvailableError
	var alreadyUsed *ticket.AlreadyUsedError

	switch {
	case errs.As(err, &notAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Table not available for the requested time",
			gin.H{"conflicts": resdto.FromReservations(notAvailable.Conflicts)})
	case errs.As(err, &alreadyUsed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Ticket already used",
			resdto.AlreadyUsedDetail{UsedAt: alreadyUsed.UsedAt, UsedBy: alreadyUsed.UsedBy})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrNotActive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Ticket not active", nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, conflictMessage(err), nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func conflictMessage(err error) string {
	switch {
	case errs.Is(err, commands.ErrTicketUsed):
		return "Ticket already used; reset it first"
	case errs.Is(err, commands.ErrTicketNotPending):
		return "Ticket is not a pending private request"
	case errs.Is(err, commands.ErrStaffExists):
		return "Username already taken"
	}
	return "Conflict"
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
