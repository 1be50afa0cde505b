package api

import (
	"context"
	"net/http"
)

// Register creates a new player account. Only a 201 counts as success; on
// success the returned token is stored on the client and attached to all
// subsequent requests.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	req := RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	var result AuthResult
	if err := c.postNoAuthExpect(ctx, AuthRegister, http.StatusCreated, req, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}

// Login authenticates an existing account. Only a 200 counts as success; on
// success the returned token is stored on the client and attached to all
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var result AuthResult
	if err := c.postNoAuthExpect(ctx, AuthLogin, http.StatusOK, req, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}
