package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrUnhealthy   = errors.New("listing server reported unhealthy")
	ErrProbeFailed = errors.New("no listing server answered")
)

// healthResponse is the body of /api/health
type healthResponse struct {
	Status string `json:"status"`
}

// Probe checks that a listing server answers at baseURL and returns the
// normalized URL
func Probe(ctx context.Context, baseURL string, timeout time.Duration) (string, error) {
	base := NormalizeURL(baseURL)
	if base == "" {
		return "", fmt.Errorf("%w: empty address", ErrProbeFailed)
	}

	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/health", nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %v", ErrProbeFailed, base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w at %s: status %d", ErrProbeFailed, base, resp.StatusCode)
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", fmt.Errorf("failed to decode health response: %w", err)
	}
	if health.Status != "healthy" {
		return "", fmt.Errorf("%w: %q", ErrUnhealthy, health.Status)
	}

	return base, nil
}
