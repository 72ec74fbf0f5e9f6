package review

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/responses"
	"farmstand/internal/review"
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
		GetByProduct(c *gin.Context)
		CreateReview(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger        logger.Logger
		ReviewService review.Service
	}

	handler struct {
		logger        logger.Logger
		reviewService review.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:        p.Logger,
		reviewService: p.ReviewService,
	}
}

func (h *handler) GetByProduct(c *gin.Context) {
	var (
		response  structs.Response
		productID = c.Param("productId")
		ctx       = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.reviewService.ListByProduct(ctx, productID)
	if err != nil {
		h.logger.Error(ctx, " err on h.reviewService.ListByProduct", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) CreateReview(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateReview
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
	created, err := h.reviewService.Create(ctx, sess, request)
	if err != nil {
		h.logger.Error(ctx, " err on h.reviewService.Create", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = created
}
