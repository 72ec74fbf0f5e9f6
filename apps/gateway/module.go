package gateway

import (
	"farmstand/apps/gateway/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)
