package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"scheme-console/internal/infra/db"
	"scheme-console/internal/infra/memstore"
	"scheme-console/internal/infra/repository"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSchemeRepository,
	),
)

// NewSchemeRepository selects the scheme store by STORE_DRIVER. The database pool
// is opened only for the postgres driver.
func NewSchemeRepository(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (shared.SchemeRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := NewDB(lc, cfg, logger)
		if err != nil {
			return nil, err
		}
		return repository.NewSchemeRepository(pool, m, logger), nil
	case config.StoreDriverMemory:
		logger.Info("インメモリストアを使用します")
		return memstore.NewSchemeStore(logger), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Store.MigrateOnBoot {
		if err := db.Migrate(cfg.DB); err != nil {
			return nil, err
		}
		logger.Info("マイグレーションを適用しました")
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

	return pool, nil
}
