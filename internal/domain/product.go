package domain

import "time"

// Product is the inventory item aggregate.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	Stock      int
	Category   string
	SupplierID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Available reports whether the product has stock on hand.
func (p *Product) Available() bool {
	return p.Stock > 0
}

// ProductDetail is a product row joined with its supplier's display fields.
type ProductDetail struct {
	Product
	SupplierName     string
	SupplierLocation string
}
