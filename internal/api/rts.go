package api

import (
	"context"
	"net/url"
)

// RTListParams filter GET /rts. Iuran filters by the monthly dues amount.
type RTListParams struct {
	Page   int
	Limit  int
	UnitID string
	Iuran  int
}

func (p RTListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "unit_id", p.UnitID)
	setInt(q, "iuran", p.Iuran)
	return q
}

// CreateRTRequest creates an RT (class or block) within a unit.
type CreateRTRequest struct {
	UnitID       string `json:"unit_id"`
	Name         string `json:"name"`
	Iuran        int    `json:"iuran"`
	HomeroomID   string `json:"homeroom_id,omitempty"`
	AcademicYear string `json:"academic_year"`
	Type         string `json:"type,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
}

// UpdateRTRequest carries only the fields to change.
type UpdateRTRequest struct {
	Name         *string `json:"name,omitempty"`
	Iuran        *int    `json:"iuran,omitempty"`
	HomeroomID   *string `json:"homeroom_id,omitempty"`
	AcademicYear *string `json:"academic_year,omitempty"`
	Type         *string `json:"type,omitempty"`
	Capacity     *int    `json:"capacity,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (c *Client) ListRTs(ctx context.Context, p RTListParams) (*Response[[]RT], error) {
	var res Response[[]RT]
	if err := c.Get(ctx, "/rts", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetRT(ctx context.Context, id string) (*Response[RT], error) {
	var res Response[RT]
	if err := c.Get(ctx, "/rts/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateRT(ctx context.Context, req CreateRTRequest) (*Response[RT], error) {
	var res Response[RT]
	if err := c.Post(ctx, "/rts", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateRT(ctx context.Context, id string, req UpdateRTRequest) (*Response[RT], error) {
	var res Response[RT]
	if err := c.Put(ctx, "/rts/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteRT(ctx context.Context, id string) error {
	return c.Delete(ctx, "/rts/"+id, nil)
}

// AddWargaToRTRequest places a warga in an RT. RTType distinguishes the
// placement kind when a warga belongs to several RTs.
type AddWargaToRTRequest struct {
	WargaID string `json:"warga_id"`
	RTType  string `json:"rt_type"`
}

func (c *Client) ListRTWargas(ctx context.Context, rtID string) (*Response[[]WargaProfile], error) {
	var res Response[[]WargaProfile]
	if err := c.Get(ctx, "/rts/"+rtID+"/wargas", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AddWargaToRT(ctx context.Context, rtID string, req AddWargaToRTRequest) (*Response[WargaProfile], error) {
	var res Response[WargaProfile]
	if err := c.Post(ctx, "/rts/"+rtID+"/wargas", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RemoveWargaFromRT(ctx context.Context, rtID, wargaID string) error {
	return c.Delete(ctx, "/rts/"+rtID+"/wargas/"+wargaID, nil)
}
