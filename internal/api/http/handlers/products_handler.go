package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/internal/validation"
)

// ProductsHandler exposes product CRUD endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	page, pageSize, err := pagination(c)
	if err != nil {
		return err
	}

	result, err := h.products.List(c.Context(), page, pageSize)
	if err != nil {
		return err
	}

	data := make([]dto.ProductResponse, 0, len(result.Items))
	for i := range result.Items {
		data = append(data, productResponse(&result.Items[i]))
	}

	return c.JSON(dto.PagedResponse[dto.ProductResponse]{
		Data:       data,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: totalPages(result.TotalCount, result.PageSize),
	})
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	detail, err := h.products.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(productResponse(detail))
}

// Search handles GET /api/products/search.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	results, err := h.products.Search(c.Context(), c.Query("query"), c.Query("category"))
	if err != nil {
		return err
	}

	data := make([]dto.ProductResponse, 0, len(results))
	for i := range results {
		data = append(data, productResponse(&results[i]))
	}
	return c.JSON(fiber.Map{"data": data})
}

// Create handles POST /api/products (Admin only).
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	detail, err := h.products.Create(c.Context(), service.ProductCreateInput{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(productResponse(detail))
}

// Update handles PUT /api/products/:id (Admin only).
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	detail, err := h.products.Update(c.Context(), id, service.ProductCreateInput{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		return err
	}
	return c.JSON(productResponse(detail))
}

// Patch handles PATCH /api/products/:id (any authenticated user).
func (h *ProductsHandler) Patch(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.ProductPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	detail, err := h.products.Patch(c.Context(), id, service.ProductPatchInput{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		return err
	}
	return c.JSON(productResponse(detail))
}

// Delete handles DELETE /api/products/:id (Admin only).
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func productResponse(detail *domain.ProductDetail) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               detail.ID,
		Name:             detail.Name,
		Price:            detail.Price,
		Stock:            detail.Stock,
		Category:         detail.Category,
		Available:        detail.Available(),
		SupplierID:       detail.SupplierID,
		SupplierName:     detail.SupplierName,
		SupplierLocation: detail.SupplierLocation,
	}
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func pagination(c *fiber.Ctx) (int, int, error) {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)
	if page < 1 || pageSize < 1 {
		return 0, 0, fiber.NewError(http.StatusBadRequest, "page and page_size must be greater than 0")
	}
	return page, pageSize, nil
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}
