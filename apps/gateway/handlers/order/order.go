package order

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/orders"
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
		GetMyOrders(c *gin.Context)
		GetFarmerOrders(c *gin.Context)
		UpdateStatusOrder(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger       logger.Logger
		OrderService orders.Service
	}

	handler struct {
		logger       logger.Logger
		orderService orders.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		orderService: p.OrderService,
	}
}

func (h *handler) GetMyOrders(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	list, err := h.orderService.My(ctx, sess)
	if err != nil {
		h.logger.Error(ctx, " err on h.orderService.My", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetFarmerOrders(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	list, err := h.orderService.Farmer(ctx, sess)
	if err != nil {
		h.logger.Error(ctx, " err on h.orderService.Farmer", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) UpdateStatusOrder(c *gin.Context) {
	var (
		response structs.Response
		request  structs.UpdateOrderStatus
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	sess, _ := middleware.SessionFrom(c)
	if err := h.orderService.UpdateStatus(ctx, sess, id, request.Status); err != nil {
		h.logger.Warn(ctx, " err on h.orderService.UpdateStatus", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}
