// Package fingerprint wraps the external fingerprint service that turns
// asset bytes into an exact content hash and a perceptual similarity
// fingerprint.
package fingerprint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/bits"
	"net/http"
	"strconv"
	"time"
)

// Config holds fingerprint service client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client computes hashes through the fingerprint service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a fingerprint service client.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Hash returns the exact content hash of the asset bytes.
func (c *Client) Hash(ctx context.Context, r io.Reader) (string, error) {
	return c.post(ctx, "/hash", r)
}

// Fingerprint returns the perceptual similarity fingerprint of the asset
// bytes, as a 64-bit hex string.
func (c *Client) Fingerprint(ctx context.Context, r io.Reader) (string, error) {
	return c.post(ctx, "/fingerprint", r)
}

type hashResponse struct {
	Value string `json:"value"`
}

func (c *Client) post(ctx context.Context, path string, r io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, r)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var out hashResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Value == "" {
		return "", fmt.Errorf("empty fingerprint value")
	}
	return out.Value, nil
}

// Distance returns the hamming distance between two 64-bit hex perceptual
// fingerprints. Unparseable fingerprints count as maximally distant.
func Distance(a, b string) int {
	x, err := strconv.ParseUint(a, 16, 64)
	if err != nil {
		return 64
	}
	y, err := strconv.ParseUint(b, 16, 64)
	if err != nil {
		return 64
	}
	return bits.OnesCount64(x ^ y)
}
