package checkout

import (
	"context"
	"fmt"

	"farmstand/internal/cart"
	"farmstand/internal/structs"
	"farmstand/pkg/logger"
	"farmstand/pkg/upstream"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	// Carts is the slice of the cart service checkout needs.
	Carts interface {
		GroupByFarmer(ctx context.Context, cartKey string) ([]structs.FarmerGroup, error)
		Clear(ctx context.Context, cartKey string) error
	}

	// Orders is the slice of the upstream client checkout needs.
	Orders interface {
		CreateOrder(ctx context.Context, token string, req structs.CreateOrder) (structs.Order, error)
	}

	Params struct {
		fx.In
		Cart     cart.Service
		Upstream upstream.Client
		Logger   logger.Logger
	}

	Service interface {
		PlaceOrder(ctx context.Context, sess structs.Session, cartKey string) (structs.CheckoutResult, error)
	}

	service struct {
		carts  Carts
		orders Orders
		logger logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		carts:  p.Cart,
		orders: p.Upstream,
		logger: p.Logger,
	}
}

// PlaceOrder turns the cart into one order per farmer and submits them
// sequentially, in group order. All orders succeeding clears the cart; a
// failure stops the loop and leaves the cart untouched. Orders already
// submitted when a later one fails are NOT rolled back — the result names
// the farmers whose orders reached the backend so the caller can see what
// a retry would duplicate.
func (s *service) PlaceOrder(ctx context.Context, sess structs.Session, cartKey string) (structs.CheckoutResult, error) {
	var result structs.CheckoutResult

	if !sess.IsCustomer() {
		return result, structs.ErrNotCustomer
	}

	groups, err := s.carts.GroupByFarmer(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->carts.GroupByFarmer", zap.Error(err))
		return result, err
	}
	if len(groups) == 0 {
		return result, structs.ErrEmptyCart
	}

	for _, group := range groups {
		req := structs.CreateOrder{
			Farmer:      group.Farmer.ID,
			Products:    make([]structs.OrderItem, 0, len(group.Items)),
			TotalAmount: group.Total,
		}
		for _, item := range group.Items {
			req.Products = append(req.Products, structs.OrderItem{
				Product:  item.Product.ID,
				Quantity: item.Quantity,
				Price:    item.Product.Price,
			})
		}

		order, err := s.orders.CreateOrder(ctx, sess.UpstreamToken, req)
		if err != nil {
			s.logger.Error(ctx, "->orders.CreateOrder",
				zap.String("farmer", group.Farmer.ID), zap.Error(err))
			return result, fmt.Errorf("place order for farmer %s: %w", group.Farmer.ID, err)
		}

		result.OrderIDs = append(result.OrderIDs, order.ID)
		result.SubmittedFarmers = append(result.SubmittedFarmers, group.Farmer.ID)
	}

	if err := s.carts.Clear(ctx, cartKey); err != nil {
		s.logger.Error(ctx, "->carts.Clear after checkout", zap.Error(err))
		return result, err
	}

	return result, nil
}
