package bootstrap

import (
	"happy-hotel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the booking API. Config and logging come first, then the
// Postgres pool and payment gateway behind the booking service and its HTTP
// handlers.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	PaymentModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
