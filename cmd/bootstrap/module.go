package bootstrap

import (
	"macondo-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.ClockModule,
	DBModule,
	JWTModule,
	MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
