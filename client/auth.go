package client

import (
	"context"

	"github.com/alpaso-live/alpaso-cli/domain"
)

type authEnvelope struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// Login exchanges credentials for a session token and profile. A 2xx
// response without both is treated as a failure: the backend has answered
// with an envelope the client cannot act on.
func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.post(ctx, "/api/auth/login", payload)
	if err != nil {
		return domain.AuthResult{}, err
	}

	var env authEnvelope
	if err := unwrapObject(body, &env); err != nil {
		return domain.AuthResult{}, &Error{Kind: KindResource, Message: "unreadable login response", Err: err}
	}
	if env.Token == "" || env.User == nil {
		return domain.AuthResult{}, &Error{Kind: KindAuth, Message: "incomplete response from server"}
	}
	env.User.Normalize()
	return domain.AuthResult{Token: env.Token, User: *env.User, Message: env.Message}, nil
}

// Register creates an account. Unlike Login, a token is optional: some
// backend revisions require a follow-up login instead.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return domain.AuthResult{}, err
	}
	body, err := c.post(ctx, "/api/auth/register", in)
	if err != nil {
		return domain.AuthResult{}, err
	}

	var env authEnvelope
	if err := unwrapObject(body, &env); err != nil {
		return domain.AuthResult{}, &Error{Kind: KindResource, Message: "unreadable register response", Err: err}
	}
	result := domain.AuthResult{Token: env.Token, Message: env.Message}
	if env.User != nil {
		env.User.Normalize()
		result.User = *env.User
	}
	return result, nil
}

// Profile fetches the authenticated user. An auth failure here means the
// stored token is expired or invalid; callers drop back to the
// unauthenticated flow.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	body, err := c.get(ctx, "/api/auth/profile")
	if err != nil {
		return domain.User{}, err
	}
	var user domain.User
	if err := unwrapObject(body, &user, "user"); err != nil {
		return domain.User{}, &Error{Kind: KindResource, Message: "unreadable profile response", Err: err}
	}
	user.Normalize()
	return user, nil
}
