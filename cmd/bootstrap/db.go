package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"macondo-backend/internal/infra/db"
	"macondo-backend/internal/infra/uow"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeDriverMemory = "memory"

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the record store. STORE_DRIVER=memory never opens a database connection.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.UnitOfWork, error) {
	if strings.EqualFold(cfg.Store.Driver, storeDriverMemory) {
		logger.Warn("in-memory store selected; data is lost on restart")
		return uow.NewMemoryUoW(clk, logger), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return uow.NewPostgresUoW(pool, clk, logger), nil
}
