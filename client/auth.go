package client

import (
	"context"

	"quickcourt/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the API and stores the returned bearer token
// on the client for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "login failed")}
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

// Register creates an account and stores the returned bearer token.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "name, email and password are required"}
	}

	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", registerRequest{FullName: fullName, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "registration failed")}
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}
