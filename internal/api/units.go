package api

import (
	"context"
	"net/url"
)

// UnitListParams filter GET /units.
type UnitListParams struct {
	Page           int
	Limit          int
	OrganizationID string
	Type           string
}

func (p UnitListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "organization_id", p.OrganizationID)
	setStr(q, "type", p.Type)
	return q
}

// CreatePerumahanRequest creates a unit under an organization.
type CreatePerumahanRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Type           string `json:"type,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Logo           string `json:"logo,omitempty"`
}

// UpdatePerumahanRequest carries only the fields to change.
type UpdatePerumahanRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Logo     *string `json:"logo,omitempty"`
	Settings *string `json:"settings,omitempty"`
}

func (c *Client) ListPerumahans(ctx context.Context, p UnitListParams) (*Response[[]Perumahan], error) {
	var res Response[[]Perumahan]
	if err := c.Get(ctx, "/units", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetPerumahan(ctx context.Context, id string) (*Response[Perumahan], error) {
	var res Response[Perumahan]
	if err := c.Get(ctx, "/units/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreatePerumahan(ctx context.Context, req CreatePerumahanRequest) (*Response[Perumahan], error) {
	var res Response[Perumahan]
	if err := c.Post(ctx, "/units", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdatePerumahan(ctx context.Context, id string, req UpdatePerumahanRequest) (*Response[Perumahan], error) {
	var res Response[Perumahan]
	if err := c.Put(ctx, "/units/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePerumahan(ctx context.Context, id string) error {
	return c.Delete(ctx, "/units/"+id, nil)
}

// UnitMemberListParams filter GET /units/{id}/members.
type UnitMemberListParams struct {
	Page  int
	Limit int
	Role  string
}

func (p UnitMemberListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "role", p.Role)
	return q
}

// AddUnitMemberRequest attaches a user to a unit under a unit-level role.
type AddUnitMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UpdateUnitMemberRequest changes a member's role or active state.
type UpdateUnitMemberRequest struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (c *Client) ListUnitMembers(ctx context.Context, unitID string, p UnitMemberListParams) (*Response[[]UnitMember], error) {
	var res Response[[]UnitMember]
	if err := c.Get(ctx, "/units/"+unitID+"/members", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetUnitMember(ctx context.Context, unitID, memberID string) (*Response[UnitMember], error) {
	var res Response[UnitMember]
	if err := c.Get(ctx, "/units/"+unitID+"/members/"+memberID, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AddUnitMember(ctx context.Context, unitID string, req AddUnitMemberRequest) (*Response[UnitMember], error) {
	var res Response[UnitMember]
	if err := c.Post(ctx, "/units/"+unitID+"/members", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUnitMember(ctx context.Context, unitID, memberID string, req UpdateUnitMemberRequest) (*Response[UnitMember], error) {
	var res Response[UnitMember]
	if err := c.Put(ctx, "/units/"+unitID+"/members/"+memberID, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RemoveUnitMember(ctx context.Context, unitID, memberID string) error {
	return c.Delete(ctx, "/units/"+unitID+"/members/"+memberID, nil)
}

// RegisterPengurusRequest is the one-shot registration of a staff member:
// the server creates the user, the unit membership, and the profile.
type RegisterPengurusRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	NIP     string `json:"nip"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// RegisterWargaRequest is the one-shot registration of a resident.
type RegisterWargaRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	NIK               string `json:"nik,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Agama             string `json:"agama,omitempty"`
	Pekerjaan         string `json:"pekerjaan,omitempty"`
	BlokRumah         string `json:"blok_rumah,omitempty"`
	NomorRumah        string `json:"nomor_rumah,omitempty"`
	StatusKepemilikan string `json:"status_kepemilikan,omitempty"`
	StatusHunian      string `json:"status_hunian,omitempty"`
}

func (c *Client) RegisterPengurus(ctx context.Context, unitID string, req RegisterPengurusRequest) (*Response[QuickRegistration], error) {
	var res Response[QuickRegistration]
	if err := c.Post(ctx, "/units/"+unitID+"/penguruss/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RegisterWarga(ctx context.Context, unitID string, req RegisterWargaRequest) (*Response[QuickRegistration], error) {
	var res Response[QuickRegistration]
	if err := c.Post(ctx, "/units/"+unitID+"/wargas/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateUnitSettingsRequest carries only the settings fields to change.
type UpdateUnitSettingsRequest struct {
	PeriodDuration   *int    `json:"period_duration,omitempty"`
	StartTime        *string `json:"start_time,omitempty"`
	TotalPeriods     *int    `json:"total_periods,omitempty"`
	BreakAfterPeriod *int    `json:"break_after_period,omitempty"`
	BreakDuration    *int    `json:"break_duration,omitempty"`
	AcademicYear     *string `json:"academic_year,omitempty"`
	CurrentSemester  *int    `json:"current_semester,omitempty"`
	Semester1Start   *string `json:"semester_1_start,omitempty"`
	Semester1End     *string `json:"semester_1_end,omitempty"`
	Semester2Start   *string `json:"semester_2_start,omitempty"`
	Semester2End     *string `json:"semester_2_end,omitempty"`
}

func (c *Client) GetUnitSettings(ctx context.Context, unitID string) (*Response[UnitSettings], error) {
	var res Response[UnitSettings]
	if err := c.Get(ctx, "/units/"+unitID+"/settings", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateUnitSettings(ctx context.Context, unitID string, req UpdateUnitSettingsRequest) (*Response[UnitSettings], error) {
	var res Response[UnitSettings]
	if err := c.Put(ctx, "/units/"+unitID+"/settings", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdatePeriodRequest adjusts one generated period's time window.
type UpdatePeriodRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func (c *Client) ListPeriodDefinitions(ctx context.Context, unitID string) (*Response[[]PeriodDefinition], error) {
	var res Response[[]PeriodDefinition]
	if err := c.Get(ctx, "/units/"+unitID+"/periods", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GeneratePeriodDefinitions asks the server to (re)derive the unit's period
// grid from its settings. The generation logic lives server-side.
func (c *Client) GeneratePeriodDefinitions(ctx context.Context, unitID string) error {
	return c.Post(ctx, "/units/"+unitID+"/periods/generate", struct{}{}, nil)
}

func (c *Client) UpdatePeriodDefinition(ctx context.Context, unitID, periodID string, req UpdatePeriodRequest) (*Response[PeriodDefinition], error) {
	var res Response[PeriodDefinition]
	if err := c.Put(ctx, "/units/"+unitID+"/periods/"+periodID, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
