package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cart"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// CartService owns the persisted id sequence of each cart and derives the
// priced view on demand.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Create allocates an empty cart and returns its opaque id.
func (s *CartService) Create(ctx context.Context) (string, error) {
	cartID := uuid.NewString()
	if err := s.carts.Put(ctx, cartID, cart.Cleared()); err != nil {
		return "", err
	}
	return cartID, nil
}

// Get aggregates the stored sequence against the current catalog.
func (s *CartService) Get(ctx context.Context, cartID string) ([]domain.CartLine, decimal.Decimal, error) {
	ids, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return s.aggregate(ctx, ids)
}

// AddItem appends one unit of the product to the sequence and returns the
// updated view. The product must exist at add time; a product deleted later
// is tolerated by the aggregator instead.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string) ([]domain.CartLine, decimal.Decimal, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, decimal.Zero, err
	}

	ids, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	ids = cart.Append(ids, productID)
	if err := s.carts.Put(ctx, cartID, ids); err != nil {
		return nil, decimal.Zero, err
	}

	return s.aggregate(ctx, ids)
}

// Clear empties the cart. Clearing an already-empty or unknown cart succeeds.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.carts.Clear(ctx, cartID)
}

func (s *CartService) aggregate(ctx context.Context, ids []string) ([]domain.CartLine, decimal.Decimal, error) {
	if len(ids) == 0 {
		return []domain.CartLine{}, decimal.Zero, nil
	}

	catalog, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines, total := cart.Aggregate(ids, catalog, s.logger)
	return lines, total, nil
}
