package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/storage"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ImageUpload carries an optional image attachment from a multipart request.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ProductInput holds the writable product fields.
type ProductInput struct {
	Name        string
	Price       string
	Category    string
	Description string
	Image       *ImageUpload
}

// ProductService coordinates catalog reads and admin-gated writes.
type ProductService struct {
	products   repository.ProductRepository
	images     storage.ImageStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository, images storage.ImageStore, dispatcher events.Dispatcher, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, images: images, dispatcher: dispatcher, logger: logger}
}

// List returns the whole catalog. Store failures on the public read path
// degrade to an empty catalog instead of failing the page.
func (s *ProductService) List(ctx context.Context) []domain.Product {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Warn("catalog read failed; serving empty list", zap.Error(err))
		return []domain.Product{}
	}
	return products
}

// ListByCategory filters the catalog by exact category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) []domain.Product {
	products, err := s.products.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Warn("category read failed; serving empty list",
			zap.String("categoria", category), zap.Error(err))
		return []domain.Product{}
	}
	return products
}

// Search matches the query against name and description, case-insensitively.
func (s *ProductService) Search(ctx context.Context, query string) []domain.Product {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		s.logger.Warn("search failed; serving empty list", zap.Error(err))
		return []domain.Product{}
	}
	return products
}

// Get returns one product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create validates and persists a new product, storing its image first when
// one is attached.
func (s *ProductService) Create(ctx context.Context, actorID string, input ProductInput) (*domain.Product, error) {
	price, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	imagePath := ""
	if input.Image != nil {
		imagePath, err = s.images.Save(input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, apperrors.NewValidationError("could not store image", map[string]any{"reason": err.Error()})
		}
	}

	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       price,
		Image:       imagePath,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventProductCreated, actorID, product)
	return product, nil
}

// Update validates and rewrites an existing product. The stored image is
// kept unless a new one is attached.
func (s *ProductService) Update(ctx context.Context, actorID, id string, input ProductInput) (*domain.Product, error) {
	price, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if input.Image != nil {
		imagePath, err = s.images.Save(input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, apperrors.NewValidationError("could not store image", map[string]any{"reason": err.Error()})
		}
	}

	product := &domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Price:       price,
		Image:       imagePath,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventProductUpdated, actorID, product)
	return product, nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventProductDeleted, actorID, &domain.Product{ID: id})
	return nil
}

func validateInput(input ProductInput) (decimal.Decimal, error) {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(input.Price) == "" {
		missing = append(missing, "precio")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "categoria")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "descripcion")
	}
	if len(missing) > 0 {
		return decimal.Zero, apperrors.NewValidationError(
			"nombre, precio, categoria, descripcion required",
			map[string]any{"missing": missing},
		)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError("precio must be a decimal number", nil)
	}
	if price.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError("precio must not be negative", nil)
	}
	return price, nil
}

func (s *ProductService) publish(ctx context.Context, eventType events.EventType, actorID string, product *domain.Product) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.ProductChangedPayload{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
		},
	})
}
