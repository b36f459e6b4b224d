package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"login successful","data":{
			"access_token":"at-1","refresh_token":"rt-1","expires_at":1790000000,
			"user":{"id":"usr1","email":"admin@example.com","full_name":"Admin"}}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	res, err := c.Login(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/auth/login", gotPath)
	assert.Equal(t, "admin@example.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.Equal(t, "at-1", res.Data.AccessToken)
	assert.Equal(t, "rt-1", res.Data.RefreshToken)
	assert.Equal(t, int64(1790000000), res.Data.ExpiresAt)
	assert.Equal(t, "usr1", res.Data.User.ID)

	// Login never stores the token on the client.
	assert.Empty(t, c.Token)
}

func TestListRTs_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.ListRTs(context.Background(), RTListParams{
		UnitID: "u1",
		Iuran:  7,
		Limit:  25,
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", gotQuery.Get("unit_id"))
	assert.Equal(t, "7", gotQuery.Get("iuran"))
	assert.Equal(t, "25", gotQuery.Get("limit"))
	// Zero-valued params stay off the wire.
	assert.False(t, gotQuery.Has("page"))
}

func TestCreateCalendarEntry_UnitScopeQuery(t *testing.T) {
	var (
		gotPath  string
		gotQuery url.Values
		gotBody  map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"ce1","title":"Final exams"}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	res, err := c.CreateCalendarEntry(context.Background(), "unit a/b", CreateCalendarEntryRequest{
		Title:     "Final exams",
		Type:      "exam",
		StartDate: "2027-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/calendar-entries", gotPath)
	assert.Equal(t, "unit a/b", gotQuery.Get("unit_id"))
	assert.Equal(t, "Final exams", gotBody["title"])
	assert.Equal(t, "exam", gotBody["type"])
	assert.Equal(t, "ce1", res.Data.ID)
}

func TestCheckScheduleConflicts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/schedules/check-conflicts", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","data":{"has_conflict":true,"conflicts":[
			{"type":"pengurus","message":"pengurus already teaches at this time",
			 "conflicts_with":{"id":"sch9","day_of_week":1,"start_time":"08:00","end_time":"09:30"}}]}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	res, err := c.CheckScheduleConflicts(context.Background(), ConflictCheckRequest{
		UnitID:     "u1",
		RTID:       "rt1",
		PengurusID: "p1",
		DayOfWeek:  1,
		StartTime:  "08:00",
		EndTime:    "09:30",
	})

	require.NoError(t, err)
	assert.True(t, res.Data.HasConflict)
	require.Len(t, res.Data.Conflicts, 1)
	assert.Equal(t, "pengurus", res.Data.Conflicts[0].Type)
	assert.Equal(t, "sch9", res.Data.Conflicts[0].ConflictsWith.ID)
}

func TestDeleteRT(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	require.NoError(t, c.DeleteRT(context.Background(), "rt42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/rts/rt42", gotPath)
}

func TestUpdateWargaProfile_OmitsUnsetFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"w1"}}`))
	}))
	t.Cleanup(srv.Close)

	status := "lunas"
	c := NewClient(srv.URL)
	_, err := c.UpdateWargaProfile(context.Background(), "w1", UpdateWargaRequest{StatusIuran: &status})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status_iuran": "lunas"}, gotBody)
}

func TestMyMemberships(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me/memberships", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","data":{
			"user_id":"usr1","is_super_admin":false,
			"organization_memberships":[{"org_id":"org1","role_id":"role1"}]}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	res, err := c.MyMemberships(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "usr1", res.Data.UserID)
	assert.False(t, res.Data.IsSuperAdmin)
	require.Len(t, res.Data.OrganizationMemberships, 1)
	assert.Equal(t, "org1", res.Data.OrganizationMemberships[0].OrgID)
}
