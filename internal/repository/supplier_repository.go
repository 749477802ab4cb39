package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// SupplierRepository encapsulates supplier persistence.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id int64) (*domain.SupplierDetail, error)
	List(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	HasProducts(ctx context.Context, id int64) (bool, error)
}

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository instantiates repository.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        INSERT INTO suppliers (name, location, email)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.Location,
		supplier.Email,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        UPDATE suppliers SET name=$1, location=$2, email=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		supplier.Name,
		supplier.Location,
		supplier.Email,
		supplier.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*domain.SupplierDetail, error) {
	const query = `
        SELECT id, name, location, email, created_at, updated_at
        FROM suppliers WHERE id=$1`

	var detail domain.SupplierDetail
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Location,
		&detail.Email,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	); err != nil {
		return nil, err
	}

	const productsQuery = `
        SELECT id, name, price, stock, category, supplier_id, created_at, updated_at
        FROM products WHERE supplier_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, productsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Stock,
			&p.Category,
			&p.SupplierID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		detail.Products = append(detail.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *supplierRepository) List(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	query := fmt.Sprintf(`
        SELECT id, name, location, email, created_at, updated_at
        FROM suppliers ORDER BY id LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Location,
			&s.Email,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *supplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count)
	return count, err
}

func (r *supplierRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepository) HasProducts(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE supplier_id=$1)`, id).Scan(&exists)
	return exists, err
}
