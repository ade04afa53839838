package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/storefront-service/internal/config"
)

// CartRepository stores the flat ordered sequence of product ids for each
// cart. Quantity is never stored; it is derived by the aggregator. Every
// mutation rewrites the whole sequence with a single SET, so readers never
// observe a partial append (last writer wins between concurrent tabs).
type CartRepository interface {
	Get(ctx context.Context, cartID string) ([]string, error)
	Put(ctx context.Context, cartID string, ids []string) error
	Clear(ctx context.Context, cartID string) error
}

type cartRepository struct {
	client *redis.Client
}

// NewCartRepository returns a Redis-backed implementation.
func NewCartRepository(client *redis.Client) CartRepository {
	return &cartRepository{client: client}
}

func cartKey(cartID string) string {
	return "carrito:" + cartID
}

// Get returns the stored sequence. A missing key is an empty cart, not an
// error.
func (r *cartRepository) Get(ctx context.Context, cartID string) ([]string, error) {
	raw, err := r.client.Get(ctx, cartKey(cartID)).Result()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart %s: %w", cartID, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return ids, nil
}

func (r *cartRepository) Put(ctx context.Context, cartID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cartID, err)
	}
	if err := r.client.Set(ctx, cartKey(cartID), raw, config.CartTTL).Err(); err != nil {
		return fmt.Errorf("put cart %s: %w", cartID, err)
	}
	return nil
}

// Clear removes the sequence. Deleting an absent key is a no-op, which keeps
// clearing idempotent.
func (r *cartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("clear cart %s: %w", cartID, err)
	}
	return nil
}
