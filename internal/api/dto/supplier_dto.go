package dto

// SupplierRequest payload for creating or fully updating a supplier.
type SupplierRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
}

// SupplierPatchRequest payload for partial updates.
type SupplierPatchRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
}

// SupplierResponse is the read view used in listings.
type SupplierResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// ProductForSupplier is the focused product view inside supplier details.
type ProductForSupplier struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

// SupplierDetailResponse is a supplier together with its products.
type SupplierDetailResponse struct {
	SupplierResponse
	Products []ProductForSupplier `json:"products"`
}
