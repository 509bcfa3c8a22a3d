package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/angristan/homeshowcase/internal/media"
	"github.com/angristan/homeshowcase/internal/models"
	"github.com/google/uuid"
)

// DefaultPort is the port a listing server listens on unless told otherwise
const DefaultPort = 8000

// ErrNotFound is matched by API errors carrying a 404 status
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the listing server
type APIError struct {
	StatusCode int
	Message    string
	// Per-field validation messages from a 422 response
	Fields models.FieldErrors
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes field errors to errors.As
func (e *APIError) Unwrap() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields
}

// Is lets errors.Is match a 404 against ErrNotFound
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to a listing server over HTTP
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the server at baseURL. A bare host or
// host:port is accepted and gets an http scheme.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: NormalizeURL(baseURL),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NormalizeURL turns user input such as "listing.local:8000" into a base
// URL without a trailing slash
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// BaseURL returns the server base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Host returns the server host and port
func (c *Client) Host() string {
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Host == "" {
		return c.baseURL
	}
	return u.Host
}

// AssetBase returns the URL prefix image files are served from
func (c *Client) AssetBase() string {
	return c.baseURL + media.DefaultAssetBase
}

// doRequest performs an API request tagged with a fresh request ID
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("api request", "method", method, "path", path, "request_id", requestID)
	return c.client.Do(req)
}

// FetchProperty retrieves the listing with its rooms in display order
func (c *Client) FetchProperty(ctx context.Context) (property *models.Property, err error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/property/full", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch property: %w", decodeError(resp))
	}

	var p models.Property
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode property: %w", err)
	}
	p.SortRooms()

	return &p, nil
}

// FetchRoom retrieves a single room
func (c *Client) FetchRoom(ctx context.Context, id int64) (room *models.Room, err error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/rooms/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch room: %w", decodeError(resp))
	}

	var r models.Room
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode room: %w", err)
	}

	return &r, nil
}

// SubmitViewingRequest posts a viewing request
func (c *Client) SubmitViewingRequest(ctx context.Context, vr *models.ViewingRequest) (created *models.ViewingRequest, err error) {
	body, err := json.Marshal(vr)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/viewing-requests", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to submit viewing request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var out models.ViewingRequest
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode viewing request: %w", err)
	}

	return &out, nil
}

// errorResponse is the error body of the listing server. Detail is either a
// string or a list of validation issues.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeError turns an error response into an APIError carrying the
// server's detail text
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		if detail != "" {
			apiErr.Message = detail
		}
		return apiErr
	}

	var issues []validationIssue
	if err := json.Unmarshal(body.Detail, &issues); err == nil && len(issues) > 0 {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg == "" {
				continue
			}
			msgs = append(msgs, issue.Msg)
			if field, ok := bodyField(issue.Loc); ok {
				if apiErr.Fields == nil {
					apiErr.Fields = models.FieldErrors{}
				}
				apiErr.Fields[field] = issue.Msg
			}
		}
		if len(msgs) > 0 {
			apiErr.Message = strings.Join(msgs, ", ")
		}
	}

	return apiErr
}

// bodyField extracts the field name from a ["body", field] location
func bodyField(loc []any) (string, bool) {
	if len(loc) != 2 || loc[0] != "body" {
		return "", false
	}
	field, ok := loc[1].(string)
	return field, ok
}
