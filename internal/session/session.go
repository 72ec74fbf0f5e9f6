package session

import (
	"context"
	"errors"
	"time"

	"farmstand/internal/cart"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/redis"
	"farmstand/pkg/upstream"
	"farmstand/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

// sessionTTL matches the gateway JWT lifetime.
const sessionTTL = 24 * time.Hour

type (
	Params struct {
		fx.In
		Upstream upstream.Client
		KV       redis.Client
		Cart     cart.Service
		Logger   logger.Logger
	}

	Service interface {
		Login(ctx context.Context, req structs.Credentials) (structs.AuthResponse, error)
		Register(ctx context.Context, req structs.RegisterRequest) error
		Logout(ctx context.Context, userID string) error
		Get(ctx context.Context, userID string) (structs.Session, error)

		ListUsers(ctx context.Context, sess structs.Session) ([]structs.User, error)
		UpdateUserRole(ctx context.Context, sess structs.Session, userID string, role string) error
		PromoteAdmin(ctx context.Context, sess structs.Session, userID string) error
		DeleteUser(ctx context.Context, sess structs.Session, userID string) error
	}

	service struct {
		upstream upstream.Client
		kv       redis.Client
		cart     cart.Service
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		upstream: p.Upstream,
		kv:       p.KV,
		cart:     p.Cart,
		logger:   p.Logger,
	}
}

func sessionRecordKey(userID string) string {
	return "session." + userID
}

// Login authenticates against the upstream API, persists the session
// record and returns the user with a gateway token.
func (s *service) Login(ctx context.Context, req structs.Credentials) (structs.AuthResponse, error) {
	resp, err := s.upstream.Login(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "->upstream.Login", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	record := structs.Session{
		User:          resp.User,
		UpstreamToken: resp.Token,
	}
	if err := s.kv.SaveObj(ctx, sessionRecordKey(resp.User.ID), record, sessionTTL); err != nil {
		s.logger.Error(ctx, "->kv.SaveObj session", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	token, err := utils.GenerateJWT(resp.User.ID, resp.User.Role)
	if err != nil {
		s.logger.Error(ctx, "->utils.GenerateJWT", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	return structs.AuthResponse{User: resp.User, Token: token}, nil
}

func (s *service) Register(ctx context.Context, req structs.RegisterRequest) error {
	if err := s.upstream.Register(ctx, req); err != nil {
		s.logger.Warn(ctx, "->upstream.Register", zap.Error(err))
		return err
	}
	return nil
}

// Logout removes the session record and the user's cart record together.
func (s *service) Logout(ctx context.Context, userID string) error {
	if err := s.kv.Delete(ctx, sessionRecordKey(userID)); err != nil {
		s.logger.Error(ctx, "->kv.Delete session", zap.Error(err))
		return err
	}
	if err := s.cart.Clear(ctx, userID); err != nil {
		s.logger.Error(ctx, "->cart.Clear on logout", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Get(ctx context.Context, userID string) (structs.Session, error) {
	var record structs.Session
	err := s.kv.FindObj(ctx, sessionRecordKey(userID), &record)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return structs.Session{}, structs.ErrUnauthorized
		}
		s.logger.Error(ctx, "->kv.FindObj session", zap.Error(err))
		return structs.Session{}, err
	}
	return record, nil
}

func (s *service) ListUsers(ctx context.Context, sess structs.Session) ([]structs.User, error) {
	users, err := s.upstream.ListUsers(ctx, sess.UpstreamToken)
	if err != nil {
		s.logger.Error(ctx, "->upstream.ListUsers", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *service) UpdateUserRole(ctx context.Context, sess structs.Session, userID string, role string) error {
	if err := s.upstream.UpdateUserRole(ctx, sess.UpstreamToken, userID, role); err != nil {
		s.logger.Error(ctx, "->upstream.UpdateUserRole", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) PromoteAdmin(ctx context.Context, sess structs.Session, userID string) error {
	if err := s.upstream.PromoteAdmin(ctx, sess.UpstreamToken, userID); err != nil {
		s.logger.Error(ctx, "->upstream.PromoteAdmin", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) DeleteUser(ctx context.Context, sess structs.Session, userID string) error {
	if err := s.upstream.DeleteUser(ctx, sess.UpstreamToken, userID); err != nil {
		s.logger.Error(ctx, "->upstream.DeleteUser", zap.Error(err))
		return err
	}
	return nil
}
