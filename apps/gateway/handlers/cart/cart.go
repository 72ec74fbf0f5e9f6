package cart

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/cart"
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
		GetCart(c *gin.Context)
		GetByFarmer(c *gin.Context)
		AddItem(c *gin.Context)
		PatchItem(c *gin.Context)
		DeleteItem(c *gin.Context)
		ClearCart(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		CartService cart.Service
	}

	handler struct {
		logger      logger.Logger
		cartService cart.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		cartService: p.CartService,
	}
}

func (h *handler) GetCart(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	view, err := h.cartService.Get(ctx, sess.User.ID)
	if err != nil {
		h.logger.Error(ctx, " err on h.cartService.Get", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = view
}

func (h *handler) GetByFarmer(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	groups, err := h.cartService.GroupByFarmer(ctx, sess.User.ID)
	if err != nil {
		h.logger.Error(ctx, " err on h.cartService.GroupByFarmer", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = groups
}

func (h *handler) AddItem(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AddCartItem
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
	view, err := h.cartService.Add(ctx, sess.User.ID, request.Product, request.Quantity)
	if err != nil {
		h.logger.Error(ctx, " err on h.cartService.Add", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = view
}

func (h *handler) PatchItem(c *gin.Context) {
	var (
		response  structs.Response
		request   structs.PatchCartItem
		productID = c.Param("productId")
		ctx       = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	sess, _ := middleware.SessionFrom(c)
	view, err := h.cartService.UpdateQuantity(ctx, sess.User.ID, productID, request.Quantity)
	if err != nil {
		h.logger.Error(ctx, " err on h.cartService.UpdateQuantity", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = view
}

func (h *handler) DeleteItem(c *gin.Context) {
	var (
		response  structs.Response
		productID = c.Param("productId")
		ctx       = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	view, err := h.cartService.Remove(ctx, sess.User.ID, productID)
	if err != nil {
		h.logger.Error(ctx, " err on h.cartService.Remove", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = view
}

func (h *handler) ClearCart(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	if err := h.cartService.Clear(ctx, sess.User.ID); err != nil {
		h.logger.Error(ctx, " err on h.cartService.Clear", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}
