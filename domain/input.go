package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const minPasswordLen = 6

type LoginInput struct {
	Email    string
	Password string
}

func (in LoginInput) Validate() error {
	if in.Email == "" {
		return invalid("email", "is required")
	}
	if !emailPattern.MatchString(in.Email) {
		return invalid("email", "is not a valid address")
	}
	if in.Password == "" {
		return invalid("password", "is required")
	}
	return nil
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Role            Role   `json:"role"`
}

func (in RegisterInput) Validate() error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if !emailPattern.MatchString(in.Email) {
		return invalid("email", "is not a valid address")
	}
	if len(in.Password) < minPasswordLen {
		return invalid("password", "must be at least 6 characters")
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return invalid("confirmPassword", "does not match password")
	}
	if in.Role != RoleBuyer && in.Role != RoleSeller {
		return invalid("role", "must be buyer or seller")
	}
	return nil
}

type StreamInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	ScheduledTime   string   `json:"scheduledTime,omitempty"`
	MaxParticipants int      `json:"maxParticipants"`
	Products        []string `json:"products"`
}

func (in StreamInput) Validate() error {
	if in.Title == "" {
		return invalid("title", "is required")
	}
	if in.Description == "" {
		return invalid("description", "is required")
	}
	if in.MaxParticipants <= 0 {
		return invalid("maxParticipants", "must be greater than zero")
	}
	return nil
}

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	LivePrice   float64 `json:"livePrice,omitempty"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
}

func (in ProductInput) Validate() error {
	if in.Name == "" {
		return invalid("name", "is required")
	}
	if in.Price <= 0 {
		return invalid("price", "must be greater than zero")
	}
	if in.Stock < 0 {
		return invalid("stock", "cannot be negative")
	}
	return nil
}

type CartInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (in CartInput) Validate() error {
	if in.ProductID == "" {
		return invalid("productId", "is required")
	}
	if in.Quantity < 1 {
		return invalid("quantity", "must be at least 1")
	}
	return nil
}
