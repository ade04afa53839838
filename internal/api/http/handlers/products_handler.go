package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ProductsHandler manages catalog endpoints, public reads and admin writes.
type ProductsHandler struct {
	service *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{service: productService}
}

// List GET /api/productos.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products := h.service.List(c.Context())
	return c.JSON(dto.NewProductResponses(products))
}

// ListByCategory GET /api/productos/categoria/:categoria.
func (h *ProductsHandler) ListByCategory(c *fiber.Ctx) error {
	products := h.service.ListByCategory(c.Context(), c.Params("categoria"))
	return c.JSON(dto.NewProductResponses(products))
}

// Search GET /api/productos/buscar?q=.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return apperrors.NewValidationError("q required", nil)
	}
	products := h.service.Search(c.Context(), query)
	return c.JSON(dto.NewProductResponses(products))
}

// Get GET /api/productos/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Create POST /api/productos.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	input, err := parseProductForm(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Context(), identity.SubjectID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewProductResponse(product))
}

// Update PUT /api/productos/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	input, err := parseProductForm(c)
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Context(), identity.SubjectID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Delete DELETE /api/productos/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	if err := h.service.Delete(c.Context(), identity.SubjectID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// parseProductForm reads the multipart fields and the optional image
// attachment. Field presence is validated by the service.
func parseProductForm(c *fiber.Ctx) (service.ProductInput, error) {
	input := service.ProductInput{
		Name:        c.FormValue("nombre"),
		Price:       c.FormValue("precio"),
		Category:    c.FormValue("categoria"),
		Description: c.FormValue("descripcion"),
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		// no attachment is fine; the image is optional
		return input, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return input, apperrors.NewValidationError("could not read image attachment", nil)
	}
	input.Image = &service.ImageUpload{Filename: fileHeader.Filename, Content: file}
	return input, nil
}
