package bootstrap

import (
	"eatyaar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	AuthModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
