package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alpaso-live/alpaso-cli/domain"
)

func TestLoginBareEnvelope(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@test.com" {
			t.Errorf("email = %q", body["email"])
		}
		w.Write([]byte(`{"message":"ok","token":"tok-1","user":{"id":"u1","name":"Ana","email":"ana@test.com","role":"buyer"}}`))
	})

	res, err := c.Login(context.Background(), "ana@test.com", "123456")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if res.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1", res.Token)
	}
	if res.User.Role != domain.RoleBuyer {
		t.Errorf("role = %q, want buyer", res.User.Role)
	}
}

func TestLoginWrappedEnvelope(t *testing.T) {
	// The same logical operation answered through a {success,data} wrapper.
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"token":"tok-2","user":{"_id":"u2","name":"Ana","email":"ana@test.com","userType":"seller"}}}`))
	})

	res, err := c.Login(context.Background(), "ana@test.com", "123456")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if res.Token != "tok-2" {
		t.Errorf("token = %q, want tok-2", res.Token)
	}
	if res.User.ID != "u2" {
		t.Errorf("id = %q, want normalized legacy _id", res.User.ID)
	}
	if res.User.Role != domain.RoleSeller {
		t.Errorf("role = %q, want normalized legacy userType", res.User.Role)
	}
}

func TestLoginIncompleteResponse(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"weird"}`))
	})

	_, err := c.Login(context.Background(), "ana@test.com", "123456")
	if !IsAuth(err) {
		t.Fatalf("2xx without token+user should be an auth error, got %v", err)
	}
}

func TestRegisterAcceptedScenario(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		var in domain.RegisterInput
		json.NewDecoder(r.Body).Decode(&in)
		if in.Name != "Ana" || in.Role != domain.RoleBuyer {
			t.Errorf("unexpected register payload %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"tok-3","user":{"id":"u3","name":"Ana","email":"ana@test.com","role":"buyer"}}`))
	})

	res, err := c.Register(context.Background(), domain.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "123456", Role: domain.RoleBuyer,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a non-null token")
	}
	if res.User.Email != "ana@test.com" {
		t.Errorf("user email = %q, want ana@test.com", res.User.Email)
	}
}

func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Register(context.Background(), domain.RegisterInput{Name: "Ana"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("invalid input reached the network")
	}
}

func TestProfileUnwrapsUserKey(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1","name":"Ana","email":"ana@test.com","role":"buyer"}}`))
	})

	user, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if user.Name != "Ana" {
		t.Errorf("name = %q, want Ana", user.Name)
	}
}
