// Package seed populates an empty database with the default accounts and a
// starter catalog so a fresh deployment is usable immediately.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
)

type seedUser struct {
	fullName string
	email    string
	password string
	roles    []string
}

type seedSupplier struct {
	name     string
	location string
	email    string
}

type seedProduct struct {
	name     string
	price    float64
	stock    int
	category string
	supplier string
}

var defaultUsers = []seedUser{
	{fullName: "Administrator", email: "admin@example.com", password: "Admin123!", roles: []string{string(domain.RoleAdmin)}},
	{fullName: "Test User", email: "user@example.com", password: "User123!", roles: []string{string(domain.RoleUser)}},
}

var defaultSuppliers = []seedSupplier{
	{name: "Tech World", location: "Roodepoort", email: "contact@techworld.co.za"},
	{name: "Sound Co", location: "Randburg", email: "info@soundco.co.za"},
	{name: "Home Essentials", location: "Soweto", email: "sales@homeessentials.co.za"},
	{name: "Gadget Hub", location: "Sandton", email: "hello@gadgethub.co.za"},
	{name: "Office Supplies", location: "Johannesburg CBD", email: "support@officesupplies.co.za"},
}

var defaultProducts = []seedProduct{
	{name: "Laptop", price: 12000.50, stock: 25, category: "Electronics", supplier: "Tech World"},
	{name: "Smartphone", price: 8000.00, stock: 50, category: "Electronics", supplier: "Tech World"},
	{name: "Headphones", price: 450.00, stock: 100, category: "Audio", supplier: "Sound Co"},
	{name: "Bluetooth Speaker", price: 1200.00, stock: 40, category: "Audio", supplier: "Sound Co"},
	{name: "Vacuum Cleaner", price: 2500.00, stock: 15, category: "Home Appliances", supplier: "Home Essentials"},
	{name: "Coffee Maker", price: 1800.00, stock: 30, category: "Home Appliances", supplier: "Home Essentials"},
	{name: "Tablet", price: 5000.00, stock: 20, category: "Electronics", supplier: "Gadget Hub"},
	{name: "Wireless Mouse", price: 300.00, stock: 150, category: "Accessories", supplier: "Gadget Hub"},
	{name: "Printer", price: 4000.00, stock: 10, category: "Office Equipment", supplier: "Office Supplies"},
	{name: "Desk Chair", price: 1500.00, stock: 25, category: "Furniture", supplier: "Office Supplies"},
}

// Run seeds users, suppliers and products. Each group is only inserted when
// its table is empty, so restarting the service never duplicates rows.
func Run(ctx context.Context, pool *pgxpool.Pool, bcryptCost int, logger *zap.Logger) error {
	if err := seedUsers(ctx, pool, bcryptCost); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedCatalog(ctx, pool); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("seed data ensured")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, bcryptCost int) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, u := range defaultUsers {
		hashed, err := auth.HashPassword(u.password, bcryptCost)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO users (full_name, email, password_hash, roles) VALUES ($1, $2, $3, $4)`,
			u.fullName, u.email, hashed, u.roles)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	supplierIDs := make(map[string]int64, len(defaultSuppliers))
	for _, s := range defaultSuppliers {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO suppliers (name, location, email) VALUES ($1, $2, $3) RETURNING id`,
			s.name, s.location, s.email).Scan(&id)
		if err != nil {
			return err
		}
		supplierIDs[s.name] = id
	}

	for _, p := range defaultProducts {
		supplierID, ok := supplierIDs[p.supplier]
		if !ok {
			return fmt.Errorf("unknown supplier %q for product %q", p.supplier, p.name)
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO products (name, price, stock, category, supplier_id) VALUES ($1, $2, $3, $4, $5)`,
			p.name, p.price, p.stock, p.category, supplierID)
		if err != nil {
			return err
		}
	}
	return nil
}
