package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"macondo-backend/internal/handler/httperr"
	"macondo-backend/internal/pkg/errs"
	"macondo-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const (
	ctxIdentityKey = "auth_identity"
	ctxAuthKindKey = "auth_kind"

	kindStaff = "staff"
	kindAdmin = "admin"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

// RequireStaff accepts "Staff <token>" (what the door scanner sends) or "Bearer <token>".
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"), "Staff ", "Bearer ")
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Staff credential required", nil)
			return
		}

		username, err := m.tokenValidator.ValidateStaff(token)
		if err != nil {
			m.logger.Warn("staff token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired staff credential", nil)
			return
		}

		c.Set(ctxIdentityKey, username)
		c.Set(ctxAuthKindKey, kindStaff)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Access token required", nil)
			return
		}

		email, err := m.tokenValidator.ValidateAdmin(c.Request.Context(), token)
		switch {
		case err == nil:
		case errs.Is(err, errs.ErrForbidden):
			m.logger.Warn("admin not on allow-list", "error", err.Error())
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
			return
		case errs.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		default:
			m.logger.Error("admin allow-list check failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}

		c.Set(ctxIdentityKey, email)
		c.Set(ctxAuthKindKey, kindAdmin)
		c.Next()
	}
}

func extractToken(header string, schemes ...string) string {
	header = strings.TrimSpace(header)
	for _, scheme := range schemes {
		if len(header) >= len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}

// GetIdentity returns the staff username or admin email set by the auth middleware.
func GetIdentity(c *gin.Context) (string, bool) {
	identity := c.GetString(ctxIdentityKey)
	return identity, identity != ""
}
