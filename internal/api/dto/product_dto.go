package dto

// ProductCreateRequest payload for creating a product. The same shape is
// used for full updates.
type ProductCreateRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	Category   string  `json:"category" validate:"required,max=100"`
	SupplierID int64   `json:"supplier_id" validate:"required,gt=0"`
}

// ProductPatchRequest payload for partial updates.
type ProductPatchRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock      *int     `json:"stock" validate:"omitempty,gte=0"`
	Category   *string  `json:"category" validate:"omitempty,max=100"`
	SupplierID *int64   `json:"supplier_id" validate:"omitempty,gt=0"`
}

// ProductResponse is the read view of a product.
type ProductResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Stock            int     `json:"stock"`
	Category         string  `json:"category"`
	Available        bool    `json:"available"`
	SupplierID       int64   `json:"supplier_id"`
	SupplierName     string  `json:"supplier_name"`
	SupplierLocation string  `json:"supplier_location"`
}

// PagedResponse wraps list data with pagination metadata.
type PagedResponse[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
