package main

import (
	"farmstand/apps/gateway"
	"farmstand/cmd/gateway/router"
	"farmstand/internal"
	"farmstand/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
