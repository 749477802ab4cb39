package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ProductRepository encapsulates product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.ProductDetail, error)
	List(ctx context.Context, limit, offset int) ([]domain.ProductDetail, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query, category string) ([]domain.ProductDetail, error)
	SupplierExists(ctx context.Context, supplierID int64) (bool, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productSelect = `
        SELECT p.id, p.name, p.price, p.stock, p.category, p.supplier_id,
               p.created_at, p.updated_at, s.name, s.location
        FROM products p
        JOIN suppliers s ON s.id = p.supplier_id`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, price, stock, category, supplier_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Stock,
		product.Category,
		product.SupplierID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, price=$2, stock=$3, category=$4, supplier_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Price,
		product.Stock,
		product.Category,
		product.SupplierID,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	query := productSelect + ` WHERE p.id=$1`

	var detail domain.ProductDetail
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Price,
		&detail.Stock,
		&detail.Category,
		&detail.SupplierID,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.SupplierName,
		&detail.SupplierLocation,
	); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int) ([]domain.ProductDetail, error) {
	query := fmt.Sprintf(`%s ORDER BY p.id LIMIT %d OFFSET %d`, productSelect, limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Search(ctx context.Context, query, category string) ([]domain.ProductDetail, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if strings.TrimSpace(query) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(query))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(p.name) LIKE $%d", len(args)))
	}
	if strings.TrimSpace(category) != "" {
		args = append(args, strings.TrimSpace(category))
		clauses = append(clauses, fmt.Sprintf("p.category=$%d", len(args)))
	}

	sql := fmt.Sprintf(`%s WHERE %s ORDER BY p.id`, productSelect, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) SupplierExists(ctx context.Context, supplierID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id=$1)`, supplierID).Scan(&exists)
	return exists, err
}

func scanProducts(rows pgx.Rows) ([]domain.ProductDetail, error) {
	var result []domain.ProductDetail
	for rows.Next() {
		var detail domain.ProductDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Price,
			&detail.Stock,
			&detail.Category,
			&detail.SupplierID,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.SupplierName,
			&detail.SupplierLocation,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}
