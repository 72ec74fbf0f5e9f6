package internal

import (
	"farmstand/internal/cart"
	"farmstand/internal/catalog"
	"farmstand/internal/checkout"
	"farmstand/internal/orders"
	"farmstand/internal/review"
	"farmstand/internal/session"

	"go.uber.org/fx"
)

var Module = fx.Options(
	cart.Module,
	checkout.Module,
	session.Module,
	catalog.Module,
	orders.Module,
	review.Module,
)
