package upstream

import (
	"context"
	"net/http"

	"farmstand/internal/structs"
)

func (c *client) ListProducts(ctx context.Context) ([]structs.Product, error) {
	var products []structs.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *client) GetProduct(ctx context.Context, id string) (structs.Product, error) {
	var product structs.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return structs.Product{}, err
	}
	return product, nil
}

func (c *client) CreateProduct(ctx context.Context, token string, req structs.CreateProduct) (structs.Product, error) {
	var product structs.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, req, &product); err != nil {
		return structs.Product{}, err
	}
	return product, nil
}

func (c *client) UpdateProduct(ctx context.Context, token string, id string, req structs.PatchProduct) (structs.Product, error) {
	var product structs.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, token, req, &product); err != nil {
		return structs.Product{}, err
	}
	return product, nil
}

func (c *client) DeleteProduct(ctx context.Context, token string, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, token, nil, nil)
}
