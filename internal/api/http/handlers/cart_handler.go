package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CartHandler manages cart endpoints.
type CartHandler struct {
	service *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{service: cartService}
}

// Create POST /api/carrito.
func (h *CartHandler) Create(c *fiber.Ctx) error {
	cartID, err := h.service.Create(c.Context())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"carrito_id": cartID})
}

// Get GET /api/carrito/:id.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	cartID := c.Params("id")
	lines, total, err := h.service.Get(c.Context(), cartID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cartID, lines, total))
}

// AddItem POST /api/carrito/:id/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" {
		return apperrors.NewValidationError("producto_id required", nil)
	}

	cartID := c.Params("id")
	lines, total, err := h.service.AddItem(c.Context(), cartID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cartID, lines, total))
}

// Clear DELETE /api/carrito/:id.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cartID := c.Params("id")
	if err := h.service.Clear(c.Context(), cartID); err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cartID, []domain.CartLine{}, decimal.Zero))
}
