package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// ProductResponse is the public catalog shape. Prices render as fixed
// 2-decimal strings.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Price       string `json:"precio"`
	Image       string `json:"imagen"`
	Description string `json:"descripcion"`
	Category    string `json:"categoria"`
}

// NewProductResponse maps a domain product to its API shape.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Image:       product.Image,
		Description: product.Description,
		Category:    product.Category,
	}
}

// NewProductResponses maps a product slice.
func NewProductResponses(products []domain.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, NewProductResponse(&products[i]))
	}
	return items
}
