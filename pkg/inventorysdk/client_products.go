package inventorysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProducts fetches a page of the catalog.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) (*Page[Product], error) {
	var resp Page[Product]
	path := fmt.Sprintf("/api/products?page=%d&page_size=%d", page, pageSize)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var resp Product
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchProducts searches by name substring and/or exact category. Empty
// arguments are omitted from the query.
func (c *Client) SearchProducts(ctx context.Context, query, category string) ([]Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if category != "" {
		params.Set("category", category)
	}

	path := "/api/products/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp SearchResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateProduct adds a product to the catalog. Requires Admin.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var resp Product
	if err := c.doJSON(ctx, http.MethodPost, "/api/products", input, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProduct replaces a product. Requires Admin.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	var resp Product
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, input, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PatchProduct partially updates a product. Requires authentication.
func (c *Client) PatchProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error) {
	var resp Product
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, patch, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProduct removes a product. Requires Admin.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/products/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
