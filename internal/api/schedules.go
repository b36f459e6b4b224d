package api

import (
	"context"
	"net/url"
)

// ScheduleListParams filter GET /schedules.
type ScheduleListParams struct {
	UnitID     string
	RTID       string
	PengurusID string
	DayOfWeek  int
	Limit      int
}

func (p ScheduleListParams) values() url.Values {
	q := url.Values{}
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "rt_id", p.RTID)
	setStr(q, "pengurus_id", p.PengurusID)
	setInt(q, "day_of_week", p.DayOfWeek)
	setInt(q, "limit", p.Limit)
	return q
}

// CreateScheduleRequest creates a weekly slot. Times are "HH:MM" strings;
// dates are "YYYY-MM-DD".
type CreateScheduleRequest struct {
	UnitID         string `json:"unit_id"`
	RTID           string `json:"rt_id"`
	KegiatanID     string `json:"kegiatan_id"`
	PengurusID     string `json:"pengurus_id"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Room           string `json:"room,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	RecurrenceType string `json:"recurrence_type,omitempty"`
}

// UpdateScheduleRequest carries only the fields to change.
type UpdateScheduleRequest struct {
	RTID           *string `json:"rt_id,omitempty"`
	KegiatanID     *string `json:"kegiatan_id,omitempty"`
	PengurusID     *string `json:"pengurus_id,omitempty"`
	DayOfWeek      *int    `json:"day_of_week,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	Room           *string `json:"room,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	RecurrenceType *string `json:"recurrence_type,omitempty"`
}

// ConflictCheckRequest asks the server whether a proposed slot clashes with
// existing schedules (same RT, pengurus, or room). ExcludeID skips one
// schedule, for edit flows. Conflict detection itself is server-side.
type ConflictCheckRequest struct {
	UnitID     string `json:"unit_id"`
	RTID       string `json:"rt_id"`
	PengurusID string `json:"pengurus_id"`
	Room       string `json:"room"`
	DayOfWeek  int    `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	ExcludeID  string `json:"exclude_id,omitempty"`
}

// CopySchedulesRequest clones one RT's full weekly schedule onto another.
type CopySchedulesRequest struct {
	SourceRTID string `json:"source_rt_id"`
	TargetRTID string `json:"target_rt_id"`
	UnitID     string `json:"unit_id"`
}

func (c *Client) ListSchedules(ctx context.Context, p ScheduleListParams) (*Response[[]Schedule], error) {
	var res Response[[]Schedule]
	if err := c.Get(ctx, "/schedules", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetSchedule(ctx context.Context, id string) (*Response[Schedule], error) {
	var res Response[Schedule]
	if err := c.Get(ctx, "/schedules/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*Response[Schedule], error) {
	var res Response[Schedule]
	if err := c.Post(ctx, "/schedules", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (*Response[Schedule], error) {
	var res Response[Schedule]
	if err := c.Put(ctx, "/schedules/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.Delete(ctx, "/schedules/"+id, nil)
}

func (c *Client) CheckScheduleConflicts(ctx context.Context, req ConflictCheckRequest) (*Response[ConflictCheckResult], error) {
	var res Response[ConflictCheckResult]
	if err := c.Post(ctx, "/schedules/check-conflicts", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CopySchedulesFromRT(ctx context.Context, req CopySchedulesRequest) (*Response[[]Schedule], error) {
	var res Response[[]Schedule]
	if err := c.Post(ctx, "/schedules/copy-from-rt", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SaveScheduleTemplateRequest snapshots an RT's schedule as a template.
type SaveScheduleTemplateRequest struct {
	UnitID       string `json:"unit_id"`
	RTID         string `json:"rt_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

// LoadScheduleTemplateRequest applies a saved template onto an RT.
type LoadScheduleTemplateRequest struct {
	TemplateID string `json:"template_id"`
	RTID       string `json:"rt_id"`
	UnitID     string `json:"unit_id"`
}

func (c *Client) ListScheduleTemplates(ctx context.Context, unitID string) (*Response[[]ScheduleTemplate], error) {
	q := url.Values{}
	q.Set("unit_id", unitID)
	var res Response[[]ScheduleTemplate]
	if err := c.Get(ctx, "/schedules/templates", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SaveScheduleTemplate(ctx context.Context, req SaveScheduleTemplateRequest) (*Response[ScheduleTemplate], error) {
	var res Response[ScheduleTemplate]
	if err := c.Post(ctx, "/schedules/templates", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LoadScheduleTemplate(ctx context.Context, req LoadScheduleTemplateRequest) (*Response[[]Schedule], error) {
	var res Response[[]Schedule]
	if err := c.Post(ctx, "/schedules/templates/load", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteScheduleTemplate(ctx context.Context, id string) error {
	return c.Delete(ctx, "/schedules/templates/"+id, nil)
}
