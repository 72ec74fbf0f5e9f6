package middleware

import (
	"farmstand/internal/responses"
	"farmstand/internal/session"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/reply"
	"farmstand/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(NewMiddleware)

const sessionCtxKey = "session"

type (
	Middleware interface {
		CheckAuth() gin.HandlerFunc
		RequireRole(role string) gin.HandlerFunc
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger     logger.Logger
		SessionSvc session.Service
	}

	mw struct {
		logger     logger.Logger
		sessionSvc session.Service
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:     params.Logger,
		sessionSvc: params.SessionSvc,
	}
}

// CheckAuth validates the gateway token and attaches the live session
// record to the request. A token for a signed-out user is rejected even
// when the JWT itself is still valid.
func (m *mw) CheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			response structs.Response
			ctx      = c.Request.Context()
		)

		authToken := c.GetHeader("Authorization")
		if utils.StrEmpty(authToken) {
			m.logger.Warn(ctx, " empty auth token")
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		claims, err := utils.ParseJWT(utils.BearerToken(authToken))
		if err != nil {
			m.logger.Warn(ctx, " invalid auth token", zap.Error(err))
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		sess, err := m.sessionSvc.Get(ctx, userID)
		if err != nil {
			response = responses.Unauthorized

			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

// RequireRole gates a route on the session role. Must run after CheckAuth.
func (m *mw) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			response structs.Response
			ctx      = c.Request.Context()
		)

		sess, ok := SessionFrom(c)
		if !ok || sess.User.Role != role {
			m.logger.Warn(ctx, " user does not have required role",
				zap.String("required", role))
			response = responses.Forbidden

			c.Abort()
			reply.Json(c.Writer, responses.ForbiddenCode, &response)
			return
		}
		c.Next()
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SessionFrom returns the session attached by CheckAuth.
func SessionFrom(c *gin.Context) (structs.Session, bool) {
	val, exists := c.Get(sessionCtxKey)
	if !exists {
		return structs.Session{}, false
	}
	sess, ok := val.(structs.Session)
	return sess, ok
}
