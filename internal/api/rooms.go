package api

import (
	"context"
	"net/url"
)

// RoomListParams filter GET /rooms.
type RoomListParams struct {
	Page     int
	Limit    int
	UnitID   string
	Type     string
	Building string
}

func (p RoomListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "type", p.Type)
	setStr(q, "building", p.Building)
	return q
}

// CreateRoomRequest creates a room within a unit.
type CreateRoomRequest struct {
	UnitID     string `json:"unit_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Building   string `json:"building,omitempty"`
	Floor      int    `json:"floor,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	Facilities string `json:"facilities,omitempty"`
}

// UpdateRoomRequest carries only the fields to change.
type UpdateRoomRequest struct {
	Code       *string `json:"code,omitempty"`
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	Building   *string `json:"building,omitempty"`
	Floor      *int    `json:"floor,omitempty"`
	Capacity   *int    `json:"capacity,omitempty"`
	Facilities *string `json:"facilities,omitempty"`
}

func (c *Client) ListRooms(ctx context.Context, p RoomListParams) (*Response[[]Room], error) {
	var res Response[[]Room]
	if err := c.Get(ctx, "/rooms", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetRoom(ctx context.Context, id string) (*Response[Room], error) {
	var res Response[Room]
	if err := c.Get(ctx, "/rooms/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Response[Room], error) {
	var res Response[Room]
	if err := c.Post(ctx, "/rooms", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (*Response[Room], error) {
	var res Response[Room]
	if err := c.Put(ctx, "/rooms/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.Delete(ctx, "/rooms/"+id, nil)
}
