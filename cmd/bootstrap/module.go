package bootstrap

import (
	"colpa-mia/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
