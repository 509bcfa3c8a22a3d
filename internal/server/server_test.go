package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, seed bool, opts Options) (*Server, *httptest.Server) {
	t.Helper()

	st, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	if seed {
		_, err := st.Seed(context.Background())
		require.NoError(t, err)
	}

	s := New(st, opts)
	s.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, out any) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	_, ts := setupTestServer(t, false, Options{})

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	_, ts := setupTestServer(t, false, Options{})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestPropertyNotFound(t *testing.T) {
	_, ts := setupTestServer(t, false, Options{})

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/property/full", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Property not found", body["detail"])

	resp = getJSON(t, ts.URL+"/api/rooms", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No property found", body["detail"])
}

func TestProperty(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var bare map[string]any
	resp := getJSON(t, ts.URL+"/api/property", &bare)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Nijlanstate 54", bare["address"])
	assert.NotContains(t, bare, "rooms")

	var full models.Property
	getJSON(t, ts.URL+"/api/property/full", &full)
	require.Len(t, full.Rooms, 7)
	assert.Equal(t, "Living Room", full.Rooms[0].Name)
	assert.Len(t, full.Images, 3)
}

func TestRooms(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var rooms []models.Room
	resp := getJSON(t, ts.URL+"/api/rooms", &rooms)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rooms, 7)

	var room models.Room
	resp = getJSON(t, ts.URL+"/api/rooms/"+itoa(rooms[1].ID), &room)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, rooms[1].Name, room.Name)

	var detail map[string]string
	resp = getJSON(t, ts.URL+"/api/rooms/9999", &detail)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Room not found", detail["detail"])

	resp = getJSON(t, ts.URL+"/api/rooms?property_id=999", &rooms)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, rooms)

	resp = getJSON(t, ts.URL+"/api/rooms?property_id=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateViewingRequest(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var stored models.ViewingRequest
	resp := postJSON(t, ts.URL+"/api/viewing-requests", `{
		"property_id": 1,
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "+31 6 1234 5678",
		"preferred_date": "2026-11-02",
		"preferred_time": "14:30"
	}`, &stored)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotZero(t, stored.ID)
	assert.Equal(t, models.StatusPending, stored.Status)

	var list viewingRequestList
	getJSON(t, ts.URL+"/api/viewing-requests?property_id=1", &list)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Requests, 1)
	assert.Equal(t, "Jane Doe", list.Requests[0].Name)
}

func TestCreateViewingRequestValidation(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var body struct {
		Detail []fieldError `json:"detail"`
	}
	resp := postJSON(t, ts.URL+"/api/viewing-requests", `{
		"property_id": 1,
		"name": "J",
		"email": "jane@example.com",
		"phone": "12345",
		"preferred_date": "2026-10-01"
	}`, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Len(t, body.Detail, 3)
	assert.Equal(t, []string{"body", "name"}, body.Detail[0].Loc)
	assert.Equal(t, []string{"body", "phone"}, body.Detail[1].Loc)
	assert.Equal(t, "Please select a future date", body.Detail[2].Msg)

	resp = postJSON(t, ts.URL+"/api/viewing-requests", `{not json`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateViewingRequestUnknownProperty(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var body map[string]string
	resp := postJSON(t, ts.URL+"/api/viewing-requests", `{
		"property_id": 42,
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "0612345678",
		"preferred_date": "2026-11-02"
	}`, &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Property not found", body["detail"])
}

func TestListViewingRequestsBounds(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	tests := []struct {
		query string
		want  int
	}{
		{"", http.StatusOK},
		{"?limit=100", http.StatusOK},
		{"?limit=0", http.StatusUnprocessableEntity},
		{"?limit=101", http.StatusUnprocessableEntity},
		{"?skip=-1", http.StatusUnprocessableEntity},
		{"?skip=x", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp := getJSON(t, ts.URL+"/api/viewing-requests"+tt.query, nil)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestUpdateViewingStatus(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	var stored models.ViewingRequest
	postJSON(t, ts.URL+"/api/viewing-requests", `{
		"property_id": 1, "name": "Jane Doe", "email": "jane@example.com",
		"phone": "0612345678", "preferred_date": "2026-11-02"
	}`, &stored)

	patch := func(id, body string) *http.Response {
		req, err := http.NewRequest(http.MethodPatch, ts.URL+"/api/viewing-requests/"+id, strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	assert.Equal(t, http.StatusOK, patch(itoa(stored.ID), `{"status":"approved"}`).StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, patch(itoa(stored.ID), `{"status":"maybe"}`).StatusCode)
	assert.Equal(t, http.StatusNotFound, patch("999", `{"status":"rejected"}`).StatusCode)
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "846_2160.jpg"), []byte("jpeg"), 0644))

	_, ts := setupTestServer(t, true, Options{AssetsDir: dir})

	resp, err := http.Get(ts.URL + "/assets/846_2160.jpg")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/assets/missing.jpg")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})

	getJSON(t, ts.URL+"/api/health", nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `homeshowcase_http_requests_total{method="GET",route="/api/health",status="200"}`)
}

// The terminal client and the server agree on the wire format
func TestClientAgainstServer(t *testing.T) {
	_, ts := setupTestServer(t, true, Options{})
	client := api.NewClient(ts.URL)
	ctx := context.Background()

	base, err := api.Probe(ctx, ts.URL, time.Second)
	require.NoError(t, err)
	assert.Equal(t, ts.URL, base)

	p, err := client.FetchProperty(ctx)
	require.NoError(t, err)
	require.Len(t, p.Rooms, 7)

	room, err := client.FetchRoom(ctx, p.Rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, p.Rooms[0].Name, room.Name)

	stored, err := client.SubmitViewingRequest(ctx, &models.ViewingRequest{
		PropertyID:    p.ID,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "0612345678",
		PreferredDate: "2026-11-02",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	_, err = client.SubmitViewingRequest(ctx, &models.ViewingRequest{PropertyID: p.ID, Name: "J"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name must be at least 2 characters")

	var fieldErrs models.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Email is required", fieldErrs["email"])
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
