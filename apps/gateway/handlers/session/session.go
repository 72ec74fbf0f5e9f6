package session

import (
	"net/http"

	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/internal/responses"
	"farmstand/internal/session"
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
		Login(c *gin.Context)
		Register(c *gin.Context)
		Logout(c *gin.Context)
		GetMe(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger         logger.Logger
		SessionService session.Service
	}

	handler struct {
		logger         logger.Logger
		sessionService session.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		sessionService: p.SessionService,
	}
}

func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		request  structs.Credentials
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	auth, err := h.sessionService.Login(ctx, request)
	if err != nil {
		h.logger.Warn(ctx, " err on h.sessionService.Login", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = auth
}

func (h *handler) Register(c *gin.Context) {
	var (
		response structs.Response
		request  structs.RegisterRequest
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	if err := h.sessionService.Register(ctx, request); err != nil {
		h.logger.Warn(ctx, " err on h.sessionService.Register", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}

func (h *handler) Logout(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	if err := h.sessionService.Logout(ctx, sess.User.ID); err != nil {
		h.logger.Error(ctx, " err on h.sessionService.Logout", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}

func (h *handler) GetMe(c *gin.Context) {
	var response structs.Response
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)

	response = responses.Success
	response.Payload = sess.User
}
