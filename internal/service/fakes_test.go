package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// fakeProductRepo is an in-memory ProductRepository backed by a supplier set.
type fakeProductRepo struct {
	mu        sync.Mutex
	nextID    int64
	products  map[int64]*domain.Product
	suppliers map[int64]string
}

func newFakeProductRepo(suppliers map[int64]string) *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[int64]*domain.Product),
		suppliers: suppliers,
	}
}

func (r *fakeProductRepo) detail(p *domain.Product) *domain.ProductDetail {
	return &domain.ProductDetail{
		Product:      *p,
		SupplierName: r.suppliers[p.SupplierID],
	}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r.detail(product), nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]domain.ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ProductDetail
	for id := int64(1); id <= r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			out = append(out, *r.detail(product))
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Search(_ context.Context, query, category string) ([]domain.ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ProductDetail
	for id := int64(1); id <= r.nextID; id++ {
		product, ok := r.products[id]
		if !ok {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(query)) {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		out = append(out, *r.detail(product))
	}
	return out, nil
}

func (r *fakeProductRepo) SupplierExists(_ context.Context, supplierID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.suppliers[supplierID]
	return ok, nil
}

// fakeSupplierRepo is an in-memory SupplierRepository.
type fakeSupplierRepo struct {
	mu           sync.Mutex
	nextID       int64
	suppliers    map[int64]*domain.Supplier
	withProducts map[int64]bool
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		suppliers:    make(map[int64]*domain.Supplier),
		withProducts: make(map[int64]bool),
	}
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	supplier.ID = r.nextID
	clone := *supplier
	r.suppliers[supplier.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *supplier
	r.suppliers[supplier.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*domain.SupplierDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.SupplierDetail{Supplier: *supplier}, nil
}

func (r *fakeSupplierRepo) List(_ context.Context, limit, offset int) ([]domain.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Supplier
	for id := int64(1); id <= r.nextID; id++ {
		if supplier, ok := r.suppliers[id]; ok {
			out = append(out, *supplier)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSupplierRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.suppliers)), nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) HasProducts(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withProducts[id], nil
}
