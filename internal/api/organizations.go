package api

import (
	"context"
	"net/url"
)

// OrganizationListParams filter GET /organizations.
type OrganizationListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p OrganizationListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "search", p.Search)
	return q
}

// CreateOrganizationRequest creates a new tenant.
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// UpdateOrganizationRequest carries only the fields to change.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Settings    *string `json:"settings,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (c *Client) ListOrganizations(ctx context.Context, p OrganizationListParams) (*Response[[]Organization], error) {
	var res Response[[]Organization]
	if err := c.Get(ctx, "/organizations", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*Response[Organization], error) {
	var res Response[Organization]
	if err := c.Get(ctx, "/organizations/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Response[Organization], error) {
	var res Response[Organization]
	if err := c.Post(ctx, "/organizations", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, req UpdateOrganizationRequest) (*Response[Organization], error) {
	var res Response[Organization]
	if err := c.Put(ctx, "/organizations/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	return c.Delete(ctx, "/organizations/"+id, nil)
}

// AddOrgMemberRequest attaches an existing user to an organization.
type AddOrgMemberRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

func (c *Client) ListOrganizationMembers(ctx context.Context, orgID string, p OrganizationListParams) (*Response[[]OrgMember], error) {
	var res Response[[]OrgMember]
	if err := c.Get(ctx, "/organizations/"+orgID+"/members", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AddOrganizationMember(ctx context.Context, orgID string, req AddOrgMemberRequest) (*Response[OrgMember], error) {
	var res Response[OrgMember]
	if err := c.Post(ctx, "/organizations/"+orgID+"/members", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateOrganizationMemberRole(ctx context.Context, orgID, userID, roleID string) (*Response[OrgMember], error) {
	body := map[string]string{"role_id": roleID}
	var res Response[OrgMember]
	if err := c.Put(ctx, "/organizations/"+orgID+"/members/"+userID, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RemoveOrganizationMember(ctx context.Context, orgID, userID string) error {
	return c.Delete(ctx, "/organizations/"+orgID+"/members/"+userID, nil)
}
