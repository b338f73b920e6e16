package bootstrap

import (
	"log/slog"

	"scheme-console/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records which backends this process runs with. Secrets are left out.
func logConfig(cfg config.Config, logger *slog.Logger) {
	attrs := []any{
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"sequencer", cfg.Scheme.Sequencer,
		"code_prefix", cfg.Scheme.CodePrefix,
		"enforce_expiry_within_range", cfg.Scheme.EnforceExpiryWithinRange,
	}
	if cfg.Store.Driver == config.StoreDriverPostgres {
		attrs = append(attrs, "db_host", cfg.DB.Host, "db_name", cfg.DB.DBName)
	}
	if cfg.Scheme.CatalogFile != "" {
		attrs = append(attrs, "catalog_file", cfg.Scheme.CatalogFile)
	}
	logger.Info("設定を読み込みました", attrs...)
}
