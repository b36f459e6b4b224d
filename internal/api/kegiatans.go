package api

import (
	"context"
	"net/url"
)

// KegiatanListParams filter GET /kegiatans.
type KegiatanListParams struct {
	UnitID string
	Limit  int
}

func (p KegiatanListParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setInt(q, "limit", p.Limit)
	return q
}

// CreateKegiatanRequest creates an activity within a unit.
type CreateKegiatanRequest struct {
	UnitID      string `json:"unit_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Credits     int    `json:"credits,omitempty"`
}

// UpdateKegiatanRequest carries only the fields to change.
type UpdateKegiatanRequest struct {
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Credits     *int    `json:"credits,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (c *Client) ListKegiatans(ctx context.Context, p KegiatanListParams) (*Response[[]Kegiatan], error) {
	var res Response[[]Kegiatan]
	if err := c.Get(ctx, "/kegiatans", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetKegiatan(ctx context.Context, id string) (*Response[Kegiatan], error) {
	var res Response[Kegiatan]
	if err := c.Get(ctx, "/kegiatans/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateKegiatan(ctx context.Context, req CreateKegiatanRequest) (*Response[Kegiatan], error) {
	var res Response[Kegiatan]
	if err := c.Post(ctx, "/kegiatans", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateKegiatan(ctx context.Context, id string, req UpdateKegiatanRequest) (*Response[Kegiatan], error) {
	var res Response[Kegiatan]
	if err := c.Put(ctx, "/kegiatans/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteKegiatan(ctx context.Context, id string) error {
	return c.Delete(ctx, "/kegiatans/"+id, nil)
}
