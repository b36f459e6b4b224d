package api

import (
	"context"
	"net/url"
)

// UserListParams filter GET /users. PlatformOnly restricts the listing to
// accounts without any organization membership.
type UserListParams struct {
	Page         int
	Limit        int
	PlatformOnly bool
}

func (p UserListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setBool(q, "platform_only", p.PlatformOnly)
	return q
}

// CreateUserRequest provisions an account directly (admin path, as opposed
// to self-service /auth/register).
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateUserRequest carries only the fields to change.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, p UserListParams) (*Response[[]User], error) {
	var res Response[[]User]
	if err := c.Get(ctx, "/users", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*Response[User], error) {
	var res Response[User]
	if err := c.Get(ctx, "/users/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*Response[User], error) {
	var res Response[User]
	if err := c.Post(ctx, "/users", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*Response[User], error) {
	var res Response[User]
	if err := c.Put(ctx, "/users/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.Delete(ctx, "/users/"+id, nil)
}

// CurrentUser fetches the profile of the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*Response[User], error) {
	var res Response[User]
	if err := c.Get(ctx, "/users/me", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MyMemberships fetches the authenticated account's organization and unit
// memberships in one call.
func (c *Client) MyMemberships(ctx context.Context) (*Response[Memberships], error) {
	var res Response[Memberships]
	if err := c.Get(ctx, "/users/me/memberships", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
