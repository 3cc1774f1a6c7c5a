// Package restapi is the source adapter for origins exposing a paged JSON
// search API. Static JSON catalogs are the degenerate single-page case.
package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// Source implements the engine's source contract over a JSON search API.
type Source struct {
	httpClient     *http.Client
	key            string
	name           string
	baseURL        string
	pageSize       int
	subSources     []string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a REST search API source from its configuration block.
func New(cfg config.SourceConfig, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		key:            cfg.Key,
		name:           cfg.Name,
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		subSources:     cfg.SubSources,
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("source", cfg.Key),
	}
}

func (s *Source) Key() string { return s.key }

func (s *Source) Name() string { return s.name }

func (s *Source) SubSources() []string { return s.subSources }

// OrderedByRecency is true: the search endpoint sorts newest first, so
// the watermark early exit applies.
func (s *Source) OrderedByRecency() bool { return true }

// NextPage fetches one listing page. An HTTP 404 signals exhaustion and
// yields an empty page, not an error.
func (s *Source) NextPage(ctx context.Context, sub, token string) (domain.Page, error) {
	q := url.Values{}
	q.Set("pageSize", fmt.Sprint(s.pageSize))
	q.Set("sort", "date:desc")
	if sub != "" {
		q.Set("collection", sub)
	}
	if token != "" {
		q.Set("page", token)
	}

	var resp listingResponse
	found, err := s.getWithRetry(ctx, s.baseURL+"/search?"+q.Encode(), &resp)
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetch listing: %w", err)
	}
	if !found {
		return domain.Page{}, nil
	}

	page := domain.Page{
		NextToken: resp.NextPage,
		HasMore:   resp.HasMore && resp.NextPage != "",
	}
	for _, item := range resp.Items {
		date, err := time.Parse(time.RFC3339, item.Date)
		if err != nil {
			s.logger.Warn("unparseable item date", "id", item.ID, "date", item.Date)
		}
		page.Items = append(page.Items, domain.RawRecord{
			ID:   item.ID,
			Date: date,
			URL:  item.URL,
		})
	}
	return page, nil
}

// FetchDetail materializes one media. A 404 or an empty record yields
// (nil, nil): the id is known to the listing but carries no usable
// content.
func (s *Source) FetchDetail(ctx context.Context, sub, id string) (*domain.Media, error) {
	var resp detailResponse
	found, err := s.getWithRetry(ctx, s.baseURL+"/items/"+url.PathEscape(id), &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch detail: %w", err)
	}
	if !found || resp.Title == "" || len(resp.Assets) == 0 {
		return nil, nil
	}
	return s.transform(&resp), nil
}

func (s *Source) transform(resp *detailResponse) *domain.Media {
	media := &domain.Media{
		SourceID:    s.key,
		ExternalID:  resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		Attributes:  resp.Attributes,
	}
	if t, err := time.Parse(time.RFC3339, resp.CreatedDate); err == nil {
		media.CreatedDate = &t
	}
	if t, err := time.Parse(time.RFC3339, resp.PublishedDate); err == nil {
		media.PublishedDate = &t
	}
	for _, asset := range resp.Assets {
		media.Files = append(media.Files, domain.FileMetadata{
			AssetURL:  asset.URL,
			Size:      asset.Size,
			Extension: asset.Extension,
		})
	}
	return media
}

// getWithRetry performs a GET with exponential backoff. The bool result
// is false for HTTP 404.
func (s *Source) getWithRetry(ctx context.Context, url string, out any) (bool, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		found, err := s.doRequest(ctx, url, out)
		if err == nil {
			return found, nil
		}
		lastErr = err

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return false, fmt.Errorf("after %d attempts: %w", s.maxAttempts, lastErr)
}

func (s *Source) doRequest(ctx context.Context, url string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Spacemedia/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
