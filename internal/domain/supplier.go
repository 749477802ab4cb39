package domain

import "time"

// Supplier models a product supplier.
type Supplier struct {
	ID        int64
	Name      string
	Location  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierDetail is a supplier together with the products it supplies.
type SupplierDetail struct {
	Supplier
	Products []Product
}
