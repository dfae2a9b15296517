package apiclient

import (
	"context"
	"net/http"

	"github.com/example/gameshop-client/internal/catalog"
)

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.getData(ctx, "/product", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a product to the catalog. Admin only; the server
// enforces the role, the bearer credential travels via the gateway.
func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) error {
	return c.doExpectOK(ctx, http.MethodPost, "/product", p)
}

// UpdateProduct replaces the product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, p catalog.Product) error {
	return c.doExpectOK(ctx, http.MethodPut, "/product/"+id, p)
}

// DeleteProduct removes the product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doExpectOK(ctx, http.MethodDelete, "/product/"+id, nil)
}
