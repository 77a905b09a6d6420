package domain

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	LivePrice   float64       `json:"livePrice,omitempty"`
	Stock       int           `json:"stock"`
	Sold        int           `json:"sold"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status"`
	Category    string        `json:"category"`

	LegacyID string `json:"_id,omitempty"`
}

func (p *Product) Normalize() {
	if p.ID == "" {
		p.ID = p.LegacyID
	}
}

// EffectivePrice is the live-discount price when one is set, else the
// regular price.
func (p Product) EffectivePrice() float64 {
	if p.LivePrice > 0 && p.LivePrice < p.Price {
		return p.LivePrice
	}
	return p.Price
}
