// Package archive is the client for the external archive's publish API.
// The engine only depends on the operation set (create, replace, edit,
// search); everything about the archive's own data model stays behind
// this boundary.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// Config holds archive API client configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the archive's HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewClient creates an archive API client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		logger:  logger.With("component", "archive"),
	}
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssetURL    string `json:"asset_url"`
}

type createResponse struct {
	ID string `json:"id"`
}

// CreateEntry uploads a new entry and returns its archive identifier.
func (c *Client) CreateEntry(ctx context.Context, title, description, assetURL string) (string, error) {
	body := createRequest{Title: title, Description: description, AssetURL: assetURL}

	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/entries", body, &resp); err != nil {
		return "", err
	}

	c.logger.Info("created archive entry", "id", resp.ID, "title", title)
	return resp.ID, nil
}

type replaceRequest struct {
	AssetURL string `json:"asset_url"`
}

// ReplaceEntry swaps an existing entry's content in place, keeping its
// identifier.
func (c *Client) ReplaceEntry(ctx context.Context, id, assetURL string) error {
	body := replaceRequest{AssetURL: assetURL}

	if err := c.do(ctx, http.MethodPut, "/entries/"+url.PathEscape(id)+"/content", body, nil); err != nil {
		return err
	}

	c.logger.Info("replaced archive entry content", "id", id)
	return nil
}

// EditMetadata sets structured fields on an existing entry.
func (c *Client) EditMetadata(ctx context.Context, id string, fields map[string]string) error {
	return c.do(ctx, http.MethodPatch, "/entries/"+url.PathEscape(id)+"/metadata", fields, nil)
}

type searchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Size        int64  `json:"size"`
		Fingerprint string `json:"fingerprint"`
	} `json:"results"`
}

// Search returns the published files carrying the given identifier token.
func (c *Client) Search(ctx context.Context, token string) ([]domain.ArchiveFile, error) {
	path := "/entries?token=" + url.QueryEscape(token)

	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	files := make([]domain.ArchiveFile, 0, len(resp.Results))
	for _, r := range resp.Results {
		files = append(files, domain.ArchiveFile{
			ID:          r.ID,
			Size:        r.Size,
			Fingerprint: r.Fingerprint,
		})
	}
	return files, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &PermanentError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &PermanentError{Op: op, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransientError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &TransientError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	default:
		return &PermanentError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransientError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
