package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"macondo-backend/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware serves the public site and the door scanner. "*" opens every origin and
// then drops credentials, which browsers refuse to combine with a wildcard.
// Patterns like https://*.macondo.pl are matched as wildcards.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			logger.Warn("CORS credentials disabled because every origin is allowed")
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
		corsCfg.AllowWildcard = slices.ContainsFunc(cfg.AllowOrigins, func(o string) bool {
			return strings.Contains(o, "*")
		})
	}

	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
