package client

import (
	"context"
	"net/url"

	"github.com/alpaso-live/alpaso-cli/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	return c.productList(ctx, "/api/products")
}

// MyProducts lists the authenticated seller's inventory.
func (c *Client) MyProducts(ctx context.Context) ([]domain.Product, error) {
	return c.productList(ctx, "/api/products/seller/my-products")
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	body, err := c.get(ctx, "/api/products/"+url.PathEscape(id))
	if err != nil {
		return domain.Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	if err := in.Validate(); err != nil {
		return domain.Product{}, err
	}
	body, err := c.post(ctx, "/api/products", in)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	if err := in.Validate(); err != nil {
		return domain.Product{}, err
	}
	body, err := c.put(ctx, "/api/products/"+url.PathEscape(id), in)
	if err != nil {
		return domain.Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.delete(ctx, "/api/products/"+url.PathEscape(id))
	return err
}

func (c *Client) productList(ctx context.Context, path string) ([]domain.Product, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	products := []domain.Product{}
	if err := unwrapList(body, &products, "products"); err != nil {
		return nil, &Error{Kind: KindResource, Message: "unreadable product list", Err: err}
	}
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func decodeProduct(body []byte) (domain.Product, error) {
	var product domain.Product
	if err := unwrapObject(body, &product, "product"); err != nil {
		return domain.Product{}, &Error{Kind: KindResource, Message: "unreadable product response", Err: err}
	}
	product.Normalize()
	return product, nil
}
