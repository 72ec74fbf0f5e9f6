package cart

import (
	"context"
	"errors"
	"fmt"

	"farmstand/internal/structs"
	"farmstand/pkg/redis"

	"go.uber.org/fx"
)

// Store persists one cart record per cart key. Load returns an empty
// state for keys that have never been written.
type Store interface {
	Load(ctx context.Context, key string) (structs.CartState, error)
	Save(ctx context.Context, key string, state structs.CartState) error
	Delete(ctx context.Context, key string) error
}

var StoreModule = fx.Provide(NewStore)

type StoreParams struct {
	fx.In
	KV redis.Client
}

type redisStore struct {
	kv redis.Client
}

func NewStore(p StoreParams) Store {
	return &redisStore{kv: p.KV}
}

func cartRecordKey(key string) string {
	return "cart." + key
}

func (s *redisStore) Load(ctx context.Context, key string) (structs.CartState, error) {
	var state structs.CartState
	err := s.kv.FindObj(ctx, cartRecordKey(key), &state)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return structs.CartState{}, nil
		}
		return structs.CartState{}, fmt.Errorf("load cart record: %w", err)
	}
	return state, nil
}

func (s *redisStore) Save(ctx context.Context, key string, state structs.CartState) error {
	if err := s.kv.SaveObj(ctx, cartRecordKey(key), state, 0); err != nil {
		return fmt.Errorf("save cart record: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, cartRecordKey(key)); err != nil {
		return fmt.Errorf("delete cart record: %w", err)
	}
	return nil
}
