package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"scheme-console/internal/infra/cache"
	"scheme-console/internal/infra/codegen"
	"scheme-console/internal/pkg/config"

	"go.uber.org/fx"
)

var SequencerModule = fx.Module("sequencer",
	fx.Provide(
		NewSequencer,
	),
)

// NewSequencer selects the daily scheme code counter by SCHEME_SEQUENCER.
func NewSequencer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (codegen.Sequencer, error) {
	switch cfg.Scheme.Sequencer {
	case config.SequencerRedis:
		client, cleanup, err := cache.Connect(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("Redisシーケンサーを使用します", "addr", cfg.Redis.Addr)
		return codegen.NewRedisSequencer(client), nil
	case config.SequencerMemory:
		return codegen.NewMemorySequencer(), nil
	default:
		return nil, fmt.Errorf("unsupported sequencer %q", cfg.Scheme.Sequencer)
	}
}
