package components

import (
	"scheme-console/internal/handler"
	"scheme-console/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSchemeHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
