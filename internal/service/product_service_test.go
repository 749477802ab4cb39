package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/cache"
	"github.com/spec-kit/inventory-service/internal/events"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

func disabledCache() *cache.Cache {
	return cache.New(nil, time.Minute, zap.NewNop())
}

func TestCreateProductRejectsUnknownSupplier(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), events.NewInMemoryDispatcher(), 5)

	_, err := svc.Create(context.Background(), ProductCreateInput{
		Name: "Laptop", Price: 12000.50, Stock: 25, Category: "Electronics", SupplierID: 99,
	})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Contains(t, domainErr.Details, "supplier_id")
}

func TestCreateProductEmitsLowStockEvent(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	var lowStock []events.Event
	dispatcher.Subscribe(events.EventProductStockLow, func(_ context.Context, e events.Event) error {
		lowStock = append(lowStock, e)
		return nil
	})

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), dispatcher, 5)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProductCreateInput{
		Name: "Printer", Price: 4000, Stock: 3, Category: "Office Equipment", SupplierID: 1,
	})
	require.NoError(t, err)
	require.Len(t, lowStock, 1)

	payload, ok := lowStock[0].Payload.(events.StockLowPayload)
	require.True(t, ok)
	require.Equal(t, 3, payload.Stock)
	require.Equal(t, 5, payload.Threshold)

	// Healthy stock levels stay quiet.
	_, err = svc.Create(ctx, ProductCreateInput{
		Name: "Laptop", Price: 12000.50, Stock: 25, Category: "Electronics", SupplierID: 1,
	})
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
}

func TestPatchProductUpdatesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), events.NewInMemoryDispatcher(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProductCreateInput{
		Name: "Laptop", Price: 12000.50, Stock: 25, Category: "Electronics", SupplierID: 1,
	})
	require.NoError(t, err)

	newStock := 7
	patched, err := svc.Patch(ctx, created.ID, ProductPatchInput{Stock: &newStock})
	require.NoError(t, err)
	require.Equal(t, 7, patched.Stock)
	require.Equal(t, "Laptop", patched.Name)
	require.Equal(t, 12000.50, patched.Price)
	require.Equal(t, "Electronics", patched.Category)
}

func TestPatchProductRejectsUnknownSupplier(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), events.NewInMemoryDispatcher(), 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProductCreateInput{
		Name: "Laptop", Price: 12000.50, Stock: 25, Category: "Electronics", SupplierID: 1,
	})
	require.NoError(t, err)

	badSupplier := int64(42)
	_, err = svc.Patch(ctx, created.ID, ProductPatchInput{SupplierID: &badSupplier})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), events.NewInMemoryDispatcher(), 0)

	_, err := svc.Get(context.Background(), 404)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestListProductsPaginates(t *testing.T) {
	t.Parallel()

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), events.NewInMemoryDispatcher(), 0)
	ctx := context.Background()

	for _, name := range []string{"Laptop", "Smartphone", "Tablet"} {
		_, err := svc.Create(ctx, ProductCreateInput{
			Name: name, Price: 100, Stock: 10, Category: "Electronics", SupplierID: 1,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Tablet", page.Items[0].Name)
}

func TestDeleteProductEmitsEvent(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	var deleted []events.Event
	dispatcher.Subscribe(events.EventProductDeleted, func(_ context.Context, e events.Event) error {
		deleted = append(deleted, e)
		return nil
	})

	repo := newFakeProductRepo(map[int64]string{1: "Tech World"})
	svc := NewProductService(repo, disabledCache(), dispatcher, 0)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProductCreateInput{
		Name: "Laptop", Price: 100, Stock: 10, Category: "Electronics", SupplierID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Len(t, deleted, 1)

	err = svc.Delete(ctx, created.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
}
