package api

import (
	"context"
	"net/url"
)

// EventListParams filter GET /events.
type EventListParams struct {
	UnitID string
	Type   string
	Limit  int
}

func (p EventListParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "type", p.Type)
	setInt(q, "limit", p.Limit)
	return q
}

// CalendarEventsParams select the month view of GET /events/calendar.
type CalendarEventsParams struct {
	UnitID string
	Year   int
	Month  int
}

func (p CalendarEventsParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setInt(q, "year", p.Year)
	setInt(q, "month", p.Month)
	return q
}

// CreateEventRequest creates an event. Dates are "YYYY-MM-DD".
type CreateEventRequest struct {
	UnitID      string `json:"unit_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
	IsAllDay    bool   `json:"is_all_day,omitempty"`
}

// UpdateEventRequest carries only the fields to change.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
	IsAllDay    *bool   `json:"is_all_day,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context, p EventListParams) (*Response[[]Event], error) {
	var res Response[[]Event]
	if err := c.Get(ctx, "/events", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*Response[Event], error) {
	var res Response[Event]
	if err := c.Get(ctx, "/events/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CalendarEvents returns events grouped for a month view.
func (c *Client) CalendarEvents(ctx context.Context, p CalendarEventsParams) (*Response[[]Event], error) {
	var res Response[[]Event]
	if err := c.Get(ctx, "/events/calendar", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Response[Event], error) {
	var res Response[Event]
	if err := c.Post(ctx, "/events", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*Response[Event], error) {
	var res Response[Event]
	if err := c.Put(ctx, "/events/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.Delete(ctx, "/events/"+id, nil)
}
