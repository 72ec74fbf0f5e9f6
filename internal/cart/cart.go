package cart

import (
	"context"

	"farmstand/internal/structs"
	"farmstand/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	StoreModule,
	fx.Provide(New),
)

type (
	Params struct {
		fx.In
		Store  Store
		Logger logger.Logger
	}

	// Service is the single source of truth for what is in a cart. Every
	// mutation persists the updated record before returning; totals and
	// the farmer grouping are recomputed from the stored state on every
	// call.
	Service interface {
		Add(ctx context.Context, cartKey string, product structs.Product, quantity int64) (structs.CartView, error)
		UpdateQuantity(ctx context.Context, cartKey string, productID string, quantity int64) (structs.CartView, error)
		Remove(ctx context.Context, cartKey string, productID string) (structs.CartView, error)
		Clear(ctx context.Context, cartKey string) error
		Get(ctx context.Context, cartKey string) (structs.CartView, error)
		GroupByFarmer(ctx context.Context, cartKey string) ([]structs.FarmerGroup, error)
	}

	service struct {
		store  Store
		logger logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		store:  p.Store,
		logger: p.Logger,
	}
}

// Add increments the line for the product when one exists, otherwise
// appends a new line. A resulting non-positive quantity removes the line.
func (s *service) Add(ctx context.Context, cartKey string, product structs.Product, quantity int64) (structs.CartView, error) {
	state, err := s.store.Load(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->store.Load", zap.Error(err))
		return structs.CartView{}, err
	}

	idx := lineIndex(state, product.ID)
	if idx < 0 {
		if quantity > 0 {
			state.Lines = append(state.Lines, structs.CartLine{Product: product, Quantity: quantity})
		}
	} else {
		state.Lines[idx].Quantity += quantity
		if state.Lines[idx].Quantity <= 0 {
			state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)
		}
	}

	if err := s.store.Save(ctx, cartKey, state); err != nil {
		s.logger.Error(ctx, "->store.Save", zap.Error(err))
		return structs.CartView{}, err
	}
	return view(state), nil
}

// UpdateQuantity sets the line's quantity. Non-positive quantities remove
// the line; an absent product is a no-op.
func (s *service) UpdateQuantity(ctx context.Context, cartKey string, productID string, quantity int64) (structs.CartView, error) {
	state, err := s.store.Load(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->store.Load", zap.Error(err))
		return structs.CartView{}, err
	}

	idx := lineIndex(state, productID)
	if idx >= 0 {
		if quantity <= 0 {
			state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)
		} else {
			state.Lines[idx].Quantity = quantity
		}
	}

	if err := s.store.Save(ctx, cartKey, state); err != nil {
		s.logger.Error(ctx, "->store.Save", zap.Error(err))
		return structs.CartView{}, err
	}
	return view(state), nil
}

func (s *service) Remove(ctx context.Context, cartKey string, productID string) (structs.CartView, error) {
	state, err := s.store.Load(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->store.Load", zap.Error(err))
		return structs.CartView{}, err
	}

	if idx := lineIndex(state, productID); idx >= 0 {
		state.Lines = append(state.Lines[:idx], state.Lines[idx+1:]...)
	}

	if err := s.store.Save(ctx, cartKey, state); err != nil {
		s.logger.Error(ctx, "->store.Save", zap.Error(err))
		return structs.CartView{}, err
	}
	return view(state), nil
}

func (s *service) Clear(ctx context.Context, cartKey string) error {
	if err := s.store.Delete(ctx, cartKey); err != nil {
		s.logger.Error(ctx, "->store.Delete", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Get(ctx context.Context, cartKey string) (structs.CartView, error) {
	state, err := s.store.Load(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->store.Load", zap.Error(err))
		return structs.CartView{}, err
	}
	return view(state), nil
}

// GroupByFarmer partitions the cart by owning farmer. Group order follows
// the first line seen for each farmer; items keep line order.
func (s *service) GroupByFarmer(ctx context.Context, cartKey string) ([]structs.FarmerGroup, error) {
	state, err := s.store.Load(ctx, cartKey)
	if err != nil {
		s.logger.Error(ctx, "->store.Load", zap.Error(err))
		return nil, err
	}
	return groupByFarmer(state), nil
}

func lineIndex(state structs.CartState, productID string) int {
	for i, line := range state.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func view(state structs.CartState) structs.CartView {
	v := structs.CartView{Lines: state.Lines}
	for _, line := range state.Lines {
		v.TotalItems += line.Quantity
		v.TotalPrice += line.Product.Price * float64(line.Quantity)
	}
	return v
}

func groupByFarmer(state structs.CartState) []structs.FarmerGroup {
	var (
		groups []structs.FarmerGroup
		byID   = map[string]int{}
	)

	for _, line := range state.Lines {
		idx, ok := byID[line.Product.Farmer.ID]
		if !ok {
			idx = len(groups)
			byID[line.Product.Farmer.ID] = idx
			groups = append(groups, structs.FarmerGroup{Farmer: line.Product.Farmer})
		}
		groups[idx].Items = append(groups[idx].Items, line)
		groups[idx].Total += line.Product.Price * float64(line.Quantity)
	}

	return groups
}
