package client

import (
	"context"
	"net/url"

	"github.com/alpaso-live/alpaso-cli/domain"
)

func (c *Client) Cart(ctx context.Context) (domain.Cart, error) {
	body, err := c.get(ctx, "/api/cart")
	if err != nil {
		return domain.Cart{}, err
	}
	return decodeCart(body)
}

// AddToCart is not idempotent: whether a repeated add sets or increments the
// quantity is backend-defined, so the returned cart is authoritative.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	in := domain.CartInput{ProductID: productID, Quantity: quantity}
	if err := in.Validate(); err != nil {
		return domain.Cart{}, err
	}
	body, err := c.post(ctx, "/api/cart/add", in)
	if err != nil {
		return domain.Cart{}, err
	}
	return decodeCart(body)
}

func (c *Client) RemoveFromCart(ctx context.Context, productID string) (domain.Cart, error) {
	body, err := c.delete(ctx, "/api/cart/remove/"+url.PathEscape(productID))
	if err != nil {
		return domain.Cart{}, err
	}
	return decodeCart(body)
}

func decodeCart(body []byte) (domain.Cart, error) {
	var cart domain.Cart
	if err := unwrapObject(body, &cart, "cart"); err != nil {
		return domain.Cart{}, &Error{Kind: KindResource, Message: "unreadable cart response", Err: err}
	}
	cart.Normalize()
	return cart, nil
}
