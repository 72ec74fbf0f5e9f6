package checkout

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/checkout"
	"farmstand/internal/responses"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Handler interface {
		PlaceOrder(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger          logger.Logger
		CheckoutService checkout.Service
	}

	handler struct {
		logger          logger.Logger
		checkoutService checkout.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		checkoutService: p.CheckoutService,
	}
}

func (h *handler) PlaceOrder(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	result, err := h.checkoutService.PlaceOrder(ctx, sess, sess.User.ID)
	if err != nil {
		h.logger.Warn(ctx, " err on h.checkoutService.PlaceOrder", zap.Error(err))
		response = responses.FromError(err)
		// already-submitted groups are reported so the user understands
		// what a retry would duplicate
		response.Payload = result
		return
	}

	response = responses.Success
	response.Payload = result
}
