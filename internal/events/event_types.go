package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated  EventType = "product_created"
	EventProductUpdated  EventType = "product_updated"
	EventProductDeleted  EventType = "product_deleted"
	EventProductStockLow EventType = "product_stock_low"
	EventSupplierCreated EventType = "supplier_created"
	EventSupplierDeleted EventType = "supplier_deleted"
	EventUserPromoted    EventType = "user_promoted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProductPayload carries product event details.
type ProductPayload struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	SupplierID int64   `json:"supplier_id"`
}

// StockLowPayload is emitted when a product's stock reaches the threshold.
type StockLowPayload struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

// SupplierPayload carries supplier event details.
type SupplierPayload struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// UserPromotedPayload carries promotion details.
type UserPromotedPayload struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
