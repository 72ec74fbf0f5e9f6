package orders

import (
	"context"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/upstream"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Upstream upstream.Client
		Logger   logger.Logger
	}

	Service interface {
		My(ctx context.Context, sess structs.Session) ([]structs.Order, error)
		Farmer(ctx context.Context, sess structs.Session) ([]structs.Order, error)
		UpdateStatus(ctx context.Context, sess structs.Session, orderID string, status string) error
	}

	service struct {
		upstream upstream.Client
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		upstream: p.Upstream,
		logger:   p.Logger,
	}
}

func (s *service) My(ctx context.Context, sess structs.Session) ([]structs.Order, error) {
	orders, err := s.upstream.MyOrders(ctx, sess.UpstreamToken)
	if err != nil {
		s.logger.Error(ctx, "->upstream.MyOrders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *service) Farmer(ctx context.Context, sess structs.Session) ([]structs.Order, error) {
	orders, err := s.upstream.FarmerOrders(ctx, sess.UpstreamToken)
	if err != nil {
		s.logger.Error(ctx, "->upstream.FarmerOrders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, sess structs.Session, orderID string, status string) error {
	if !structs.ValidOrderStatus(status) {
		return structs.ErrBadRequest
	}

	if err := s.upstream.UpdateOrderStatus(ctx, sess.UpstreamToken, orderID, status); err != nil {
		s.logger.Error(ctx, "->upstream.UpdateOrderStatus", zap.Error(err))
		return err
	}
	return nil
}
