package api

import (
	"context"
	"net/url"
)

// PermissionListParams filter GET /permissions.
type PermissionListParams struct {
	Page     int
	Limit    int
	Resource string
}

func (p PermissionListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "resource", p.Resource)
	return q
}

// CreatePermissionRequest registers a new resource/action capability. The
// server derives the permission name from resource and action.
type CreatePermissionRequest struct {
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
}

func (c *Client) ListPermissions(ctx context.Context, p PermissionListParams) (*Response[[]Permission], error) {
	var res Response[[]Permission]
	if err := c.Get(ctx, "/permissions", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetPermission(ctx context.Context, id string) (*Response[Permission], error) {
	var res Response[Permission]
	if err := c.Get(ctx, "/permissions/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreatePermission(ctx context.Context, req CreatePermissionRequest) (*Response[Permission], error) {
	var res Response[Permission]
	if err := c.Post(ctx, "/permissions", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePermission(ctx context.Context, id string) error {
	return c.Delete(ctx, "/permissions/"+id, nil)
}
