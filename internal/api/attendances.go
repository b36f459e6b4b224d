package api

import (
	"context"
	"net/url"
)

// AttendanceListParams filter GET /attendances. Date is "YYYY-MM-DD".
type AttendanceListParams struct {
	UnitID  string
	WargaID string
	RTID    string
	Date    string
	Status  string
	Limit   int
}

func (p AttendanceListParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "warga_id", p.WargaID)
	setStr(q, "rt_id", p.RTID)
	setStr(q, "date", p.Date)
	setStr(q, "status", p.Status)
	setInt(q, "limit", p.Limit)
	return q
}

// CreateAttendanceRequest records one warga's presence for a date.
type CreateAttendanceRequest struct {
	UnitID  string `json:"unit_id"`
	WargaID string `json:"warga_id"`
	RTID    string `json:"rt_id,omitempty"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateAttendanceRequest carries only the fields to change.
type UpdateAttendanceRequest struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

func (c *Client) ListAttendances(ctx context.Context, p AttendanceListParams) (*Response[[]Attendance], error) {
	var res Response[[]Attendance]
	if err := c.Get(ctx, "/attendances", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetAttendance(ctx context.Context, id string) (*Response[Attendance], error) {
	var res Response[Attendance]
	if err := c.Get(ctx, "/attendances/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*Response[Attendance], error) {
	var res Response[Attendance]
	if err := c.Post(ctx, "/attendances", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateAttendance(ctx context.Context, id string, req UpdateAttendanceRequest) (*Response[Attendance], error) {
	var res Response[Attendance]
	if err := c.Put(ctx, "/attendances/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	return c.Delete(ctx, "/attendances/"+id, nil)
}
