package bootstrap

import (
	"scheme-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	StoreModule,
	SequencerModule,
	components.CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
