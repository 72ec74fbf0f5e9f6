package product

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/catalog"
	"farmstand/internal/responses"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Handler interface {
		GetListProduct(c *gin.Context)
		GetByIDProduct(c *gin.Context)
		CreateProduct(c *gin.Context)
		PatchProduct(c *gin.Context)
		DeleteProduct(c *gin.Context)
		UploadImage(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger         logger.Logger
		CatalogService catalog.Service
	}

	handler struct {
		logger         logger.Logger
		catalogService catalog.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		catalogService: p.CatalogService,
	}
}

func (h *handler) GetListProduct(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	products, err := h.catalogService.List(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogService.List", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	limit := cast.ToInt(c.Query("limit"))
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	response = responses.Success
	response.Payload = products
}

func (h *handler) GetByIDProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	product, err := h.catalogService.Get(ctx, id)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogService.Get", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = product
}

func (h *handler) CreateProduct(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateProduct
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
	product, err := h.catalogService.Create(ctx, sess, request)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogService.Create", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = product
}

func (h *handler) PatchProduct(c *gin.Context) {
	var (
		response structs.Response
		request  structs.PatchProduct
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
	product, err := h.catalogService.Update(ctx, sess, id, request)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogService.Update", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = product
}

func (h *handler) DeleteProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	if err := h.catalogService.Delete(ctx, sess, id); err != nil {
		h.logger.Error(ctx, " err on h.catalogService.Delete", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}

func (h *handler) UploadImage(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.logger.Warn(ctx, " error parse multipart form", zap.Error(err))
		response = responses.BadRequest
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Warn(ctx, " error open uploaded file", zap.Error(err))
		response = responses.BadRequest
		return
	}
	defer file.Close()

	url, err := h.catalogService.UploadImage(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogService.UploadImage", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = structs.UploadedImage{URL: url}
}
