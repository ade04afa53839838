package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// AddCartItemRequest payload for appending one unit to a cart.
type AddCartItemRequest struct {
	ProductID string `json:"producto_id"`
}

// CartLineResponse is one aggregated line item.
type CartLineResponse struct {
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre"`
	Quantity  int    `json:"cantidad"`
	UnitPrice string `json:"precio_unitario"`
	LineTotal string `json:"subtotal"`
}

// CartResponse is the priced view of a cart.
type CartResponse struct {
	CartID string             `json:"carrito_id"`
	Items  []CartLineResponse `json:"items"`
	Total  string             `json:"total"`
}

// NewCartResponse maps aggregated lines and total to the API shape.
func NewCartResponse(cartID string, lines []domain.CartLine, total decimal.Decimal) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}
	return CartResponse{CartID: cartID, Items: items, Total: total.StringFixed(2)}
}
