package bootstrap

import (
	"macondo-backend/internal/pkg/config"
	"macondo-backend/internal/pkg/jwt"
	"macondo-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewTokens,
	),
)

func NewTokens(cfg config.Config) commands.Tokens {
	return commands.Tokens{
		Staff: jwt.NewService(cfg.JWT.StaffSecret, jwt.KindStaff, cfg.JWT.StaffDuration),
		Admin: jwt.NewService(cfg.JWT.AdminSecret, jwt.KindAdmin, cfg.JWT.AdminDuration),
	}
}
