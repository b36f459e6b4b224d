package api

import (
	"context"
	"net/url"
)

// IuranListParams filter GET /iurans.
type IuranListParams struct {
	UnitID       string
	WargaID      string
	RTID         string
	KegiatanID   string
	AcademicYear string
	Semester     int
	Type         string
	Limit        int
}

func (p IuranListParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "warga_id", p.WargaID)
	setStr(q, "rt_id", p.RTID)
	setStr(q, "kegiatan_id", p.KegiatanID)
	setStr(q, "academic_year", p.AcademicYear)
	setInt(q, "semester", p.Semester)
	setStr(q, "type", p.Type)
	setInt(q, "limit", p.Limit)
	return q
}

// CreateIuranRequest records an assessment entry for a warga.
type CreateIuranRequest struct {
	UnitID       string  `json:"unit_id"`
	WargaID      string  `json:"warga_id"`
	KegiatanID   string  `json:"kegiatan_id"`
	RTID         string  `json:"rt_id,omitempty"`
	PengurusID   string  `json:"pengurus_id,omitempty"`
	AcademicYear string  `json:"academic_year"`
	Semester     int     `json:"semester"`
	Type         string  `json:"type"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// UpdateIuranRequest carries only the fields to change.
type UpdateIuranRequest struct {
	Type     *string  `json:"type,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty"`
	Semester *int     `json:"semester,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

func (c *Client) ListIurans(ctx context.Context, p IuranListParams) (*Response[[]Iuran], error) {
	var res Response[[]Iuran]
	if err := c.Get(ctx, "/iurans", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetIuran(ctx context.Context, id string) (*Response[Iuran], error) {
	var res Response[Iuran]
	if err := c.Get(ctx, "/iurans/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateIuran(ctx context.Context, req CreateIuranRequest) (*Response[Iuran], error) {
	var res Response[Iuran]
	if err := c.Post(ctx, "/iurans", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateIuran(ctx context.Context, id string, req UpdateIuranRequest) (*Response[Iuran], error) {
	var res Response[Iuran]
	if err := c.Put(ctx, "/iurans/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteIuran(ctx context.Context, id string) error {
	return c.Delete(ctx, "/iurans/"+id, nil)
}
