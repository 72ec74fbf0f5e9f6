package handlers

import (
	"farmstand/apps/gateway/handlers/cart"
	"farmstand/apps/gateway/handlers/checkout"
	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/apps/gateway/handlers/order"
	"farmstand/apps/gateway/handlers/product"
	"farmstand/apps/gateway/handlers/review"
	"farmstand/apps/gateway/handlers/session"
	"farmstand/apps/gateway/handlers/user"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	session.Module,
	user.Module,
	product.Module,
	cart.Module,
	checkout.Module,
	order.Module,
	review.Module,
)
