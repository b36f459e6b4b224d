package api

import (
	"context"
	"net/url"
)

// RoleListParams filter GET /roles.
type RoleListParams struct {
	Page           int
	Limit          int
	OrganizationID string
}

func (p RoleListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "organization_id", p.OrganizationID)
	return q
}

// CreateRoleRequest creates a role and optionally binds permissions to it.
type CreateRoleRequest struct {
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	DisplayName    string   `json:"display_name"`
	Type           string   `json:"type"`
	Level          int      `json:"level"`
	Description    string   `json:"description"`
	IsDefault      bool     `json:"is_default,omitempty"`
	PermissionIDs  []string `json:"permission_ids,omitempty"`
}

// UpdateRoleRequest carries only the fields to change. A non-nil
// PermissionIDs replaces the role's permission bindings wholesale.
type UpdateRoleRequest struct {
	Name          *string  `json:"name,omitempty"`
	DisplayName   *string  `json:"display_name,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Level         *int     `json:"level,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PermissionIDs []string `json:"permission_ids,omitempty"`
}

func (c *Client) ListRoles(ctx context.Context, p RoleListParams) (*Response[[]Role], error) {
	var res Response[[]Role]
	if err := c.Get(ctx, "/roles", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetRole(ctx context.Context, id string) (*Response[Role], error) {
	var res Response[Role]
	if err := c.Get(ctx, "/roles/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) (*Response[Role], error) {
	var res Response[Role]
	if err := c.Post(ctx, "/roles", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*Response[Role], error) {
	var res Response[Role]
	if err := c.Put(ctx, "/roles/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.Delete(ctx, "/roles/"+id, nil)
}
