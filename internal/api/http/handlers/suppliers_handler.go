package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/service"
	"github.com/spec-kit/inventory-service/internal/validation"
)

// SuppliersHandler exposes supplier CRUD endpoints.
type SuppliersHandler struct {
	suppliers *service.SupplierService
}

// NewSuppliersHandler constructs handler.
func NewSuppliersHandler(suppliers *service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{suppliers: suppliers}
}

// List handles GET /api/suppliers.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	page, pageSize, err := pagination(c)
	if err != nil {
		return err
	}

	result, err := h.suppliers.List(c.Context(), page, pageSize)
	if err != nil {
		return err
	}

	data := make([]dto.SupplierResponse, 0, len(result.Items))
	for i := range result.Items {
		data = append(data, supplierResponse(&result.Items[i]))
	}

	return c.JSON(dto.PagedResponse[dto.SupplierResponse]{
		Data:       data,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: totalPages(result.TotalCount, result.PageSize),
	})
}

// Get handles GET /api/suppliers/:id; the response includes the supplier's
// products.
func (h *SuppliersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	detail, err := h.suppliers.Get(c.Context(), id)
	if err != nil {
		return err
	}

	resp := dto.SupplierDetailResponse{
		SupplierResponse: supplierResponse(&detail.Supplier),
		Products:         make([]dto.ProductForSupplier, 0, len(detail.Products)),
	}
	for i := range detail.Products {
		p := &detail.Products[i]
		resp.Products = append(resp.Products, dto.ProductForSupplier{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Stock:     p.Stock,
			Category:  p.Category,
			Available: p.Available(),
		})
	}
	return c.JSON(resp)
}

// Create handles POST /api/suppliers (Admin only).
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	supplier, err := h.suppliers.Create(c.Context(), service.SupplierInput{
		Name:     req.Name,
		Location: req.Location,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(supplierResponse(supplier))
}

// Update handles PUT /api/suppliers/:id (Admin only).
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	supplier, err := h.suppliers.Update(c.Context(), id, service.SupplierInput{
		Name:     req.Name,
		Location: req.Location,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(supplierResponse(supplier))
}

// Patch handles PATCH /api/suppliers/:id (any authenticated user).
func (h *SuppliersHandler) Patch(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.SupplierPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	supplier, err := h.suppliers.Patch(c.Context(), id, service.SupplierPatchInput{
		Name:     req.Name,
		Location: req.Location,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(supplierResponse(supplier))
}

// Delete handles DELETE /api/suppliers/:id (Admin only).
func (h *SuppliersHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.suppliers.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func supplierResponse(s *domain.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Location: s.Location,
		Email:    s.Email,
	}
}
