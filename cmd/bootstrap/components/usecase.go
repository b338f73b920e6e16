package components

import (
	"time"

	"scheme-console/internal/infra/codegen"
	"scheme-console/internal/pkg/clock"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/usecase/commands"
	"scheme-console/internal/usecase/queries"
	"scheme-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(shared.SchemeCodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSchemeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSchemeQueries,
	),
)

// NewClock runs business days in the configured log timezone.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClock(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}

func NewCodeGenerator(seq codegen.Sequencer, repo shared.SchemeRepository, clk clock.Clock, cfg config.Config) *codegen.Generator {
	return codegen.NewGenerator(seq, repo, clk, cfg.Scheme.CodePrefix)
}
