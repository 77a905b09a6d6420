package domain

// CartEntry quantities are server-owned; whether a repeated add sets or
// increments the quantity is backend-defined, so the client only renders
// whatever comes back.
type CartEntry struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

type Cart struct {
	Items []CartEntry `json:"items"`
	Total float64     `json:"total,omitempty"`
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Normalize() {
	for i := range c.Items {
		if c.Items[i].Product != nil {
			c.Items[i].Product.Normalize()
		}
	}
}
