package service

import (
	"context"
	"errors"
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

const productsEntity = "products"

// ProductPage is a page of products plus pagination metadata.
type ProductPage struct {
	Items      []domain.ProductDetail
	TotalCount int64
	Page       int
	PageSize   int
}

// ProductCreateInput describes a new product.
type ProductCreateInput struct {
	Name       string
	Price      float64
	Stock      int
	Category   string
	SupplierID int64
}

// ProductPatchInput carries optional field updates.
type ProductPatchInput struct {
	Name       *string
	Price      *float64
	Stock      *int
	Category   *string
	SupplierID *int64
}

// ProductService coordinates product workflows.
type ProductService struct {
	products          repository.ProductRepository
	cache             *cache.Cache
	dispatcher        events.Dispatcher
	lowStockThreshold int
}

// NewProductService constructs the service.
func NewProductService(products repository.ProductRepository, c *cache.Cache, dispatcher events.Dispatcher, lowStockThreshold int) *ProductService {
	return &ProductService{
		products:          products,
		cache:             c,
		dispatcher:        dispatcher,
		lowStockThreshold: lowStockThreshold,
	}
}

// List returns a page of products, served from cache when possible.
func (s *ProductService) List(ctx context.Context, page, pageSize int) (*ProductPage, error) {
	key := s.cache.PageKey(ctx, productsEntity, page, pageSize)

	var cached ProductPage
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	items, err := s.products.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := &ProductPage{Items: items, TotalCount: total, Page: page, PageSize: pageSize}
	s.cache.SetJSON(ctx, key, result)
	return result, nil
}

// Get returns a single product with supplier details.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	key := cache.IDKey(productsEntity, id)

	var cached domain.ProductDetail
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	detail, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, err
	}
	s.cache.SetJSON(ctx, key, detail)
	return detail, nil
}

// Search finds products by name substring and/or exact category.
func (s *ProductService) Search(ctx context.Context, query, category string) ([]domain.ProductDetail, error) {
	return s.products.Search(ctx, query, category)
}

// Create validates the supplier reference and persists a new product.
func (s *ProductService) Create(ctx context.Context, input ProductCreateInput) (*domain.ProductDetail, error) {
	if err := s.checkSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:       input.Name,
		Price:      input.Price,
		Stock:      input.Stock,
		Category:   input.Category,
		SupplierID: input.SupplierID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	s.publishProduct(ctx, events.EventProductCreated, product)
	s.checkLowStock(ctx, product)

	return s.products.GetByID(ctx, product.ID)
}

// Update replaces all mutable fields of an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, input ProductCreateInput) (*domain.ProductDetail, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, err
	}
	if err := s.checkSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	product := existing.Product
	product.Name = input.Name
	product.Price = input.Price
	product.Stock = input.Stock
	product.Category = input.Category
	product.SupplierID = input.SupplierID

	if err := s.products.Update(ctx, &product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.publishProduct(ctx, events.EventProductUpdated, &product)
	s.checkLowStock(ctx, &product)

	return s.products.GetByID(ctx, id)
}

// Patch applies the provided fields only.
func (s *ProductService) Patch(ctx context.Context, id int64, input ProductPatchInput) (*domain.ProductDetail, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, err
	}

	product := existing.Product
	if input.SupplierID != nil {
		if err := s.checkSupplier(ctx, *input.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = *input.SupplierID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := s.products.Update(ctx, &product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.publishProduct(ctx, events.EventProductUpdated, &product)
	s.checkLowStock(ctx, &product)

	return s.products.GetByID(ctx, id)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product")
		}
		return err
	}

	s.invalidate(ctx, id)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventProductDeleted,
			EntityID:  strconv.FormatInt(id, 10),
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *ProductService) checkSupplier(ctx context.Context, supplierID int64) error {
	exists, err := s.products.SupplierExists(ctx, supplierID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidationError("validation failed", map[string]any{
			"supplier_id": "supplier does not exist",
		})
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id int64) {
	s.cache.Delete(ctx, cache.IDKey(productsEntity, id))
	s.cache.BumpVersion(ctx, productsEntity)
}

func (s *ProductService) publishProduct(ctx context.Context, eventType events.EventType, product *domain.Product) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  strconv.FormatInt(product.ID, 10),
		Timestamp: time.Now(),
		Payload: events.ProductPayload{
			Name:       product.Name,
			Category:   product.Category,
			Price:      product.Price,
			Stock:      product.Stock,
			SupplierID: product.SupplierID,
		},
	})
}

func (s *ProductService) checkLowStock(ctx context.Context, product *domain.Product) {
	if s.dispatcher == nil || s.lowStockThreshold <= 0 || product.Stock > s.lowStockThreshold {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventProductStockLow,
		EntityID:  strconv.FormatInt(product.ID, 10),
		Timestamp: time.Now(),
		Payload: events.StockLowPayload{
			Name:      product.Name,
			Stock:     product.Stock,
			Threshold: s.lowStockThreshold,
		},
	})
}
