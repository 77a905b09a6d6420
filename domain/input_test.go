package domain

import (
	"errors"
	"testing"
)

func wantValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != field {
		t.Fatalf("expected error on field %q, got %q (%s)", field, verr.Field, verr.Reason)
	}
}

func TestLoginInputValidate(t *testing.T) {
	if err := (LoginInput{Email: "ana@test.com", Password: "123456"}).Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	wantValidationError(t, LoginInput{Password: "x"}.Validate(), "email")
	wantValidationError(t, LoginInput{Email: "not-an-email", Password: "x"}.Validate(), "email")
	wantValidationError(t, LoginInput{Email: "ana@test.com"}.Validate(), "password")
}

func TestRegisterInputValidate(t *testing.T) {
	valid := RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "123456", Role: RoleBuyer}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in := valid
	in.Name = ""
	wantValidationError(t, in.Validate(), "name")

	in = valid
	in.Email = "ana@test"
	wantValidationError(t, in.Validate(), "email")

	in = valid
	in.Password = "12345"
	wantValidationError(t, in.Validate(), "password")

	in = valid
	in.ConfirmPassword = "different"
	wantValidationError(t, in.Validate(), "confirmPassword")

	in = valid
	in.Role = RoleAdmin
	wantValidationError(t, in.Validate(), "role")
}

func TestStreamInputValidate(t *testing.T) {
	valid := StreamInput{Title: "Coffee tasting", Description: "Live tasting", MaxParticipants: 50}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in := valid
	in.Title = ""
	wantValidationError(t, in.Validate(), "title")

	in = valid
	in.Description = ""
	wantValidationError(t, in.Validate(), "description")

	in = valid
	in.MaxParticipants = 0
	wantValidationError(t, in.Validate(), "maxParticipants")
}

func TestProductInputValidate(t *testing.T) {
	valid := ProductInput{Name: "Espresso Blend", Price: 28.99, Stock: 30}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in := valid
	in.Name = ""
	wantValidationError(t, in.Validate(), "name")

	in = valid
	in.Price = 0
	wantValidationError(t, in.Validate(), "price")

	in = valid
	in.Stock = -1
	wantValidationError(t, in.Validate(), "stock")
}

func TestCartInputValidate(t *testing.T) {
	if err := (CartInput{ProductID: "prod-1", Quantity: 2}).Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	wantValidationError(t, CartInput{Quantity: 1}.Validate(), "productId")
	wantValidationError(t, CartInput{ProductID: "prod-1"}.Validate(), "quantity")
}
