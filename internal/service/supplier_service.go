package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/cache"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

const suppliersEntity = "suppliers"

// SupplierPage is a page of suppliers plus pagination metadata.
type SupplierPage struct {
	Items      []domain.Supplier
	TotalCount int64
	Page       int
	PageSize   int
}

// SupplierInput describes supplier create/update payloads.
type SupplierInput struct {
	Name     string
	Location string
	Email    string
}

// SupplierPatchInput carries optional field updates.
type SupplierPatchInput struct {
	Name     *string
	Location *string
	Email    *string
}

// SupplierService coordinates supplier workflows.
type SupplierService struct {
	suppliers  repository.SupplierRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
}

// NewSupplierService constructs the service.
func NewSupplierService(suppliers repository.SupplierRepository, c *cache.Cache, dispatcher events.Dispatcher) *SupplierService {
	return &SupplierService{suppliers: suppliers, cache: c, dispatcher: dispatcher}
}

// List returns a page of suppliers, served from cache when possible.
func (s *SupplierService) List(ctx context.Context, page, pageSize int) (*SupplierPage, error) {
	key := s.cache.PageKey(ctx, suppliersEntity, page, pageSize)

	var cached SupplierPage
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	items, err := s.suppliers.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.suppliers.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := &SupplierPage{Items: items, TotalCount: total, Page: page, PageSize: pageSize}
	s.cache.SetJSON(ctx, key, result)
	return result, nil
}

// Get returns a supplier together with its products.
func (s *SupplierService) Get(ctx context.Context, id int64) (*domain.SupplierDetail, error) {
	detail, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("supplier")
		}
		return nil, err
	}
	return detail, nil
}

// Create persists a new supplier.
func (s *SupplierService) Create(ctx context.Context, input SupplierInput) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name:     input.Name,
		Location: input.Location,
		Email:    input.Email,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.invalidate(ctx, supplier.ID)
	s.publishSupplier(ctx, events.EventSupplierCreated, supplier)
	return supplier, nil
}

// Update replaces all mutable fields of an existing supplier.
func (s *SupplierService) Update(ctx context.Context, id int64, input SupplierInput) (*domain.Supplier, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier := detail.Supplier
	supplier.Name = input.Name
	supplier.Location = input.Location
	supplier.Email = input.Email

	if err := s.suppliers.Update(ctx, &supplier); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return &supplier, nil
}

// Patch applies the provided fields only.
func (s *SupplierService) Patch(ctx context.Context, id int64, input SupplierPatchInput) (*domain.Supplier, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier := detail.Supplier
	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Location != nil {
		supplier.Location = *input.Location
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}

	if err := s.suppliers.Update(ctx, &supplier); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return &supplier, nil
}

// Delete removes a supplier; suppliers that still have products cannot be
// deleted.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	hasProducts, err := s.suppliers.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return apperrors.NewDomainError("SUPPLIER_HAS_PRODUCTS",
			"supplier has associated products and cannot be deleted", http.StatusBadRequest, nil)
	}

	if err := s.suppliers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("supplier")
		}
		return err
	}

	s.invalidate(ctx, id)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSupplierDeleted,
			EntityID:  strconv.FormatInt(id, 10),
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *SupplierService) invalidate(ctx context.Context, id int64) {
	s.cache.Delete(ctx, cache.IDKey(suppliersEntity, id))
	s.cache.BumpVersion(ctx, suppliersEntity)
	// product rows embed supplier name/location
	s.cache.BumpVersion(ctx, productsEntity)
}

func (s *SupplierService) publishSupplier(ctx context.Context, eventType events.EventType, supplier *domain.Supplier) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  strconv.FormatInt(supplier.ID, 10),
		Timestamp: time.Now(),
		Payload: events.SupplierPayload{
			Name:     supplier.Name,
			Location: supplier.Location,
		},
	})
}
