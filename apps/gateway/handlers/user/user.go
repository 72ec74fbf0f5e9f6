package user

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

// Admin-only user management, proxied to the upstream API.
type (
	Handler interface {
		GetListUser(c *gin.Context)
		UpdateUserRole(c *gin.Context)
		PromoteAdmin(c *gin.Context)
		DeleteUser(c *gin.Context)
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

func (h *handler) GetListUser(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	users, err := h.sessionService.ListUsers(ctx, sess)
	if err != nil {
		h.logger.Error(ctx, " err on h.sessionService.ListUsers", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = users
}

func (h *handler) UpdateUserRole(c *gin.Context) {
	var (
		response structs.Response
		request  structs.UpdateUserRole
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
	if err := h.sessionService.UpdateUserRole(ctx, sess, id, request.Role); err != nil {
		h.logger.Error(ctx, " err on h.sessionService.UpdateUserRole", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}

func (h *handler) PromoteAdmin(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	if err := h.sessionService.PromoteAdmin(ctx, sess, id); err != nil {
		h.logger.Error(ctx, " err on h.sessionService.PromoteAdmin", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}

func (h *handler) DeleteUser(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess, _ := middleware.SessionFrom(c)
	if err := h.sessionService.DeleteUser(ctx, sess, id); err != nil {
		h.logger.Error(ctx, " err on h.sessionService.DeleteUser", zap.Error(err))
		response = responses.FromError(err)
		return
	}

	response = responses.Success
}
