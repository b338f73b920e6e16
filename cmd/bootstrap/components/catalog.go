package components

import (
	"log/slog"

	"scheme-console/internal/infra/catalog"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalog,
			fx.As(new(shared.CatalogProvider)),
		),
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.StaticCatalog, error) {
	c, err := catalog.Load(cfg.Scheme.CatalogFile)
	if err != nil {
		return nil, err
	}
	source := cfg.Scheme.CatalogFile
	if source == "" {
		source = "embedded"
	}
	logger.Info("カタログを読み込みました", "source", source)
	return c, nil
}
