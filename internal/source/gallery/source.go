// Package gallery is the source adapter for plain HTML gallery sites:
// paginated index pages linking to per-item detail pages.
package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// Source scrapes one gallery site. Selectors come from configuration so
// one adapter covers the common gallery layouts.
type Source struct {
	httpClient *http.Client
	key        string
	name       string
	baseURL    string
	subSources []string
	sel        config.GalleryConfig
	logger     *slog.Logger
}

func New(cfg config.SourceConfig, logger *slog.Logger) *Source {
	sel := cfg.Gallery
	if sel.ItemSelector == "" {
		sel.ItemSelector = "a.gallery-item"
	}
	if sel.LinkAttr == "" {
		sel.LinkAttr = "href"
	}
	if sel.DateFormat == "" {
		sel.DateFormat = "2006-01-02"
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		key:        cfg.Key,
		name:       cfg.Name,
		baseURL:    cfg.BaseURL,
		subSources: cfg.SubSources,
		sel:        sel,
		logger:     logger.With("source", cfg.Key),
	}
}

func (s *Source) Key() string { return s.key }

func (s *Source) Name() string { return s.name }

func (s *Source) SubSources() []string { return s.subSources }

// OrderedByRecency: galleries list newest first.
func (s *Source) OrderedByRecency() bool { return true }

// NextPage scrapes one index page. Page tokens are 1-based page numbers;
// a 404 means the gallery ran out of pages.
func (s *Source) NextPage(ctx context.Context, sub, token string) (domain.Page, error) {
	pageNum := 1
	if token != "" {
		n, err := strconv.Atoi(token)
		if err != nil {
			return domain.Page{}, fmt.Errorf("bad page token %q: %w", token, err)
		}
		pageNum = n
	}

	doc, found, err := s.fetchDocument(ctx, s.indexURL(sub, pageNum))
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetch index page %d: %w", pageNum, err)
	}
	if !found {
		return domain.Page{}, nil
	}

	var page domain.Page
	doc.Find(s.sel.ItemSelector).Each(func(_ int, sel *goquery.Selection) {
		link, ok := sel.Attr(s.sel.LinkAttr)
		if !ok || link == "" {
			return
		}
		abs := s.absolute(link)

		record := domain.RawRecord{
			ID:  itemID(abs),
			URL: abs,
		}
		if s.sel.DateSelector != "" {
			raw := strings.TrimSpace(sel.Find(s.sel.DateSelector).First().Text())
			if t, err := time.Parse(s.sel.DateFormat, raw); err == nil {
				record.Date = t
			} else {
				s.logger.Warn("unparseable gallery date", "id", record.ID, "date", raw)
			}
		}
		page.Items = append(page.Items, record)
	})

	page.HasMore = len(page.Items) > 0
	page.NextToken = strconv.Itoa(pageNum + 1)
	return page, nil
}

// FetchDetail scrapes one item page: title from the first h1, description
// from the meta description, one file per media link or image.
func (s *Source) FetchDetail(ctx context.Context, sub, id string) (*domain.Media, error) {
	doc, found, err := s.fetchDocument(ctx, s.detailURL(sub, id))
	if err != nil {
		return nil, fmt.Errorf("fetch detail page: %w", err)
	}
	if !found {
		return nil, nil
	}

	media := &domain.Media{
		SourceID:   s.key,
		ExternalID: id,
		Title:      strings.TrimSpace(doc.Find("h1").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && desc != "" {
		media.Description = &desc
	}
	if published, ok := doc.Find("time[datetime]").Attr("datetime"); ok {
		if t, err := time.Parse(time.RFC3339, published); err == nil {
			media.PublishedDate = &t
		}
	}

	seen := make(map[string]bool)
	collect := func(raw string) {
		abs := s.absolute(raw)
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(abs), "."))
		if ext == "" || seen[abs] {
			return
		}
		seen[abs] = true
		media.Files = append(media.Files, domain.FileMetadata{
			AssetURL:  abs,
			Extension: ext,
		})
	}
	doc.Find("a.asset, a.download").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			collect(href)
		}
	})
	doc.Find("img.full, main img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			collect(src)
		}
	})

	if media.Title == "" || len(media.Files) == 0 {
		return nil, nil
	}
	return media, nil
}

func (s *Source) indexURL(sub string, page int) string {
	u := s.baseURL
	if sub != "" {
		u += "/" + url.PathEscape(sub)
	}
	return fmt.Sprintf("%s?page=%d", u, page)
}

func (s *Source) detailURL(sub, id string) string {
	u := s.baseURL
	if sub != "" {
		u += "/" + url.PathEscape(sub)
	}
	return u + "/" + url.PathEscape(id)
}

func (s *Source) absolute(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	if u.IsAbs() {
		return link
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return link
	}
	return base.ResolveReference(u).String()
}

func (s *Source) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Spacemedia/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("parse document: %w", err)
	}
	return doc, true, nil
}

// itemID derives a stable identifier from a detail URL: its last path
// element without extension.
func itemID(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	base := path.Base(u.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}
