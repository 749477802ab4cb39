package inventorysdk

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the service's user view returned by auth endpoints.
type User struct {
	ID       string   `json:"id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// RegisterResponse wraps the registration confirmation.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// PromoteResponse wraps the promotion confirmation.
type PromoteResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Product is the catalog product view.
type Product struct {
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

// ProductInput is the payload for creating or fully updating a product.
type ProductInput struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Category   string  `json:"category"`
	SupplierID int64   `json:"supplier_id"`
}

// ProductPatch carries optional fields for partial product updates. Nil
// fields are omitted from the request body and left unchanged server-side.
type ProductPatch struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Stock      *int     `json:"stock,omitempty"`
	Category   *string  `json:"category,omitempty"`
	SupplierID *int64   `json:"supplier_id,omitempty"`
}

// Supplier is the supplier list view.
type Supplier struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// SupplierProduct is the focused product view inside supplier details.
type SupplierProduct struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

// SupplierDetail is a supplier together with its products.
type SupplierDetail struct {
	Supplier
	Products []SupplierProduct `json:"products"`
}

// SupplierInput is the payload for creating or fully updating a supplier.
type SupplierInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

// SupplierPatch carries optional fields for partial supplier updates.
type SupplierPatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Page is the standard paginated response envelope.
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// SearchResponse wraps unpaged search results.
type SearchResponse struct {
	Data []Product `json:"data"`
}
