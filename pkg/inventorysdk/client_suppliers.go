package inventorysdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListSuppliers fetches a page of suppliers.
func (c *Client) ListSuppliers(ctx context.Context, page, pageSize int) (*Page[Supplier], error) {
	var resp Page[Supplier]
	path := fmt.Sprintf("/api/suppliers?page=%d&page_size=%d", page, pageSize)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSupplier fetches a supplier together with its products.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*SupplierDetail, error) {
	var resp SupplierDetail
	path := fmt.Sprintf("/api/suppliers/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateSupplier adds a supplier. Requires Admin.
func (c *Client) CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error) {
	var resp Supplier
	if err := c.doJSON(ctx, http.MethodPost, "/api/suppliers", input, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSupplier replaces a supplier. Requires Admin.
func (c *Client) UpdateSupplier(ctx context.Context, id int64, input SupplierInput) (*Supplier, error) {
	var resp Supplier
	path := fmt.Sprintf("/api/suppliers/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, input, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PatchSupplier partially updates a supplier. Requires authentication.
func (c *Client) PatchSupplier(ctx context.Context, id int64, patch SupplierPatch) (*Supplier, error) {
	var resp Supplier
	path := fmt.Sprintf("/api/suppliers/%d", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, patch, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSupplier removes a supplier. Fails with a 400 when products still
// reference it. Requires Admin.
func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/suppliers/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
