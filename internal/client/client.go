// Package client reads the penal code from the API's read endpoint.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// Client talks to the /api/v1 group of the server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL, e.g. "http://localhost:8080/api/v1".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListCrimes fetches every crime.
func (c *Client) ListCrimes(ctx context.Context) ([]models.Crime, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/crimes", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch crimes: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch crimes: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var crimes []models.Crime
	if err := json.NewDecoder(resp.Body).Decode(&crimes); err != nil {
		return nil, fmt.Errorf("decode crimes: %w", err)
	}
	return crimes, nil
}
