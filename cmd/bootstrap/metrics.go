package bootstrap

import (
	"scheme-console/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewDefault,
	),
)
