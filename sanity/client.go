// Package sanity is the HTTP backend of content.Gateway. It runs GROQ queries
// against the CMS query API and patches view counters through the mutate API.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"bangla-news/internal/logger"
	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/httpclient"
	"bangla-news/models"
	"bangla-news/trace"
)

// Client is a thin caller of the CMS query and mutate APIs.
//
// Queries go to the apicdn host when use_cdn is set; mutations always use the api host.
type Client struct {
	query   *httpclient.BaseClient
	mutate  *httpclient.BaseClient
	dataset string
	version string
}

var _ content.Gateway = (*Client)(nil)

// New builds a client for https://{project}.api.sanity.io.
func New(cfg config.SanityConfig) *Client {
	apiHost := fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	queryHost := apiHost
	if cfg.UseCDN {
		queryHost = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
	}
	return newClient(queryHost, apiHost, cfg)
}

// NewWithBaseURL points both query and mutate calls at baseURL.
func NewWithBaseURL(baseURL string, cfg config.SanityConfig) *Client {
	return newClient(baseURL, baseURL, cfg)
}

func newClient(queryHost, apiHost string, cfg config.SanityConfig) *Client {
	httpCfg := httpclient.Config{Timeout: cfg.Timeout}
	c := &Client{
		query:   httpclient.NewBaseClient(queryHost, httpCfg),
		mutate:  httpclient.NewBaseClient(apiHost, httpCfg),
		dataset: cfg.Dataset,
		version: cfg.APIVersion,
	}
	if cfg.Token != "" {
		c.query.Header.Set("Authorization", "Bearer "+cfg.Token)
		c.mutate.Header.Set("Authorization", "Bearer "+cfg.Token)
	}
	return c
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// fetch runs a GROQ query. Params are JSON-encoded into $name query args.
// A null result reports content.ErrNotFound.
func (c *Client) fetch(ctx context.Context, op, groq string, params map[string]any, out any) error {
	q := url.Values{}
	q.Set("query", groq)
	q.Set("perspective", "published")
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("sanity %s: encoding param %s: %w", op, name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	relPath := path.Join("/v"+c.version, "data", "query", c.dataset)
	req, err := c.query.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return err
	}

	var resp queryResponse
	if err := c.query.DoJSON(req, "sanity "+op, &resp); err != nil {
		return err
	}
	if len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
		return content.ErrNotFound
	}
	logger.DebugWithFields("sanity query", logger.Fields{
		"op":         op,
		"ms":         resp.MS,
		"request_id": trace.RequestIDFromContext(ctx),
	})
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("sanity %s: decoding result: %w", op, err)
	}
	return nil
}

// fetchList is fetch for array results; a null result is an empty list.
func (c *Client) fetchList(ctx context.Context, op, groq string, params map[string]any) ([]models.Article, error) {
	var out []models.Article
	if err := c.fetch(ctx, op, groq, params, &out); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return []models.Article{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []models.Article{}
	}
	return out, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.fetch(ctx, "FetchCategories", queryCategories, nil, &out); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return []models.Category{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []models.Category{}
	}
	return out, nil
}

func (c *Client) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var out models.Category
	if err := c.fetch(ctx, "FetchCategoryBySlug", queryCategoryBySlug, map[string]any{"slug": slug}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchFeaturedArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return c.fetchList(ctx, "FetchFeaturedArticles", queryFeatured(limit), nil)
}

func (c *Client) FetchTrendingArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return c.fetchList(ctx, "FetchTrendingArticles", queryTrending(limit), nil)
}

func (c *Client) FetchBreakingNews(ctx context.Context, limit int) ([]models.Article, error) {
	return c.fetchList(ctx, "FetchBreakingNews", queryBreaking(limit), nil)
}

func (c *Client) FetchLatestArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return c.fetchList(ctx, "FetchLatestArticles", queryLatest(limit), nil)
}

func (c *Client) FetchArticlesByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]models.Article, error) {
	return c.fetchList(ctx, "FetchArticlesByCategory", queryByCategory(offset, limit), map[string]any{"slug": categorySlug})
}

func (c *Client) CountArticlesByCategory(ctx context.Context, categorySlug string) (int, error) {
	var n int
	if err := c.fetch(ctx, "CountArticlesByCategory", queryCountCategory, map[string]any{"slug": categorySlug}, &n); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// FetchArticleBySlug returns one article, or content.ErrNotFound.
func (c *Client) FetchArticleBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	var out models.ArticleDetail
	if err := c.fetch(ctx, "FetchArticleBySlug", queryArticleBySlug, map[string]any{"slug": slug}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchRelatedArticles(ctx context.Context, categoryID, excludeArticleID string, limit int) ([]models.Article, error) {
	params := map[string]any{"categoryId": categoryID, "excludeId": excludeArticleID}
	return c.fetchList(ctx, "FetchRelatedArticles", queryRelated(limit), params)
}

func (c *Client) SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	if query == "" {
		return []models.Article{}, nil
	}
	return c.fetchList(ctx, "SearchArticles", querySearch(limit), map[string]any{"term": query + "*"})
}

func (c *Client) FetchSitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	var docs []models.Document
	if err := c.fetch(ctx, "FetchSitemapEntries", querySitemap, nil, &docs); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return []models.SitemapEntry{}, nil
		}
		return nil, err
	}
	entries := make([]models.SitemapEntry, 0, len(docs))
	for _, doc := range docs {
		entry := models.SitemapEntry{Kind: doc.Kind, Slug: doc.SlugValue()}
		if doc.Article != nil {
			entry.PublishedAt = doc.Article.PublishedAt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) Ping(ctx context.Context) error {
	var n int
	return c.fetch(ctx, "Ping", queryPing, nil, &n)
}

type mutation struct {
	Patch struct {
		ID  string           `json:"id"`
		Inc map[string]int64 `json:"inc"`
	} `json:"patch"`
}

// IncrementArticleViews patches views += 1 on the published document.
func (c *Client) IncrementArticleViews(ctx context.Context, articleID string) error {
	var m mutation
	m.Patch.ID = articleID
	m.Patch.Inc = map[string]int64{"views": 1}

	body, err := json.Marshal(map[string]any{"mutations": []mutation{m}})
	if err != nil {
		return err
	}

	relPath := path.Join("/v"+c.version, "data", "mutate", c.dataset)
	req, err := c.mutate.NewRequest(ctx, http.MethodPost, relPath, url.Values{"returnIds": {"false"}}, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := c.mutate.DoJSON(req, "sanity IncrementArticleViews", nil); err != nil {
		if errors.Is(err, httpclient.ErrNotFound) {
			return content.ErrNotFound
		}
		return err
	}
	return nil
}
