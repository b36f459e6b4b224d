package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
}

func TestNewClient_Timeout(t *testing.T) {
	c := NewClient("http://localhost:8080")
	assert.Equal(t, 30*time.Second, c.HTTPClient.Timeout)
}

func TestClient_PathPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","data":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	var res Response[[]Organization]
	err := c.Get(context.Background(), "/organizations", nil, &res)

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/organizations", gotPath)
}

func TestClient_QueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	q := url.Values{}
	q.Set("page", "2")
	q.Set("limit", "50")
	err := c.Get(context.Background(), "/users", q, nil)

	require.NoError(t, err)
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "50", gotQuery.Get("limit"))
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)

	// No token set: no Authorization header at all.
	require.NoError(t, c.Get(context.Background(), "/units", nil, nil))
	assert.Empty(t, gotAuth)

	c.SetToken("tok-123")
	require.NoError(t, c.Get(context.Background(), "/units", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Clearing the token removes the header again.
	c.SetToken("")
	require.NoError(t, c.Get(context.Background(), "/units", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestClient_RequestHeaders(t *testing.T) {
	var (
		gotAccept      string
		gotContentType string
		gotRequestIDs  []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestIDs = append(gotRequestIDs, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	require.NoError(t, c.Post(context.Background(), "/units", map[string]string{"name": "x"}, nil))

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotRequestIDs, 1)
	assert.NotEmpty(t, gotRequestIDs[0])

	// Each request carries a fresh ID.
	require.NoError(t, c.Get(context.Background(), "/units", nil, nil))
	require.Len(t, gotRequestIDs, 2)
	assert.NotEqual(t, gotRequestIDs[0], gotRequestIDs[1])
}

func TestClient_GetHasNoContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	require.NoError(t, c.Get(context.Background(), "/units", nil, nil))
	assert.Empty(t, gotContentType)
}

func TestClient_ErrorFromErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"name already taken"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/units", nil, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "name already taken", apiErr.Message)
	assert.Equal(t, "name already taken", err.Error())
}

func TestClient_ErrorFromMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"insufficient permissions"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/units", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "insufficient permissions", err.Error())
}

func TestClient_ErrorFieldWinsOverMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"duplicate code","message":"conflict"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/units", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "duplicate code", err.Error())
}

func TestClient_ErrorFallbackStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"non-json body", http.StatusNotFound, "<html>not found</html>", "HTTP 404: Not Found"},
		{"empty body", http.StatusInternalServerError, "", "HTTP 500: Internal Server Error"},
		{"json without known fields", http.StatusBadGateway, `{"detail":"x"}`, "HTTP 502: Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c := NewClient(srv.URL)
			err := c.Get(context.Background(), "/units", nil, nil)

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestClient_TransportErrorWrapped(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	c.HTTPClient.Timeout = 500 * time.Millisecond

	err := c.Get(context.Background(), "/units", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
}

func TestClient_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"found","data":{"id":"u1","name":"SDN 1","code":"SDN1","is_active":true}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	res, err := c.GetPerumahan(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "found", res.Message)
	assert.Equal(t, "u1", res.Data.ID)
	assert.Equal(t, "SDN 1", res.Data.Name)
	assert.True(t, res.Data.IsActive)
}

func TestClient_PostBody(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"rt1"}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.CreateRT(context.Background(), CreateRTRequest{
		UnitID:       "u1",
		Name:         "RT 01",
		Iuran:        50000,
		AcademicYear: "2026/2027",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", gotBody["unit_id"])
	assert.Equal(t, "RT 01", gotBody["name"])
	assert.Equal(t, float64(50000), gotBody["iuran"])
	assert.Equal(t, "2026/2027", gotBody["academic_year"])
}
