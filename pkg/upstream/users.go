package upstream

import (
	"context"
	"net/http"

	"farmstand/internal/structs"
)

func (c *client) Login(ctx context.Context, req structs.Credentials) (structs.AuthResponse, error) {
	var resp structs.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, &resp); err != nil {
		return structs.AuthResponse{}, err
	}
	return resp, nil
}

func (c *client) Register(ctx context.Context, req structs.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users/register", "", req, nil)
}

func (c *client) ListUsers(ctx context.Context, token string) ([]structs.User, error) {
	var users []structs.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) UpdateUserRole(ctx context.Context, token string, id string, role string) error {
	req := structs.UpdateUserRole{Role: role}
	return c.do(ctx, http.MethodPut, "/users/"+id+"/role", token, req, nil)
}

func (c *client) PromoteAdmin(ctx context.Context, token string, id string) error {
	return c.do(ctx, http.MethodPut, "/users/"+id+"/promote-admin", token, nil, nil)
}

func (c *client) DeleteUser(ctx context.Context, token string, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil)
}
