package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/models"
)

// fakeGateway is an in-memory content.Gateway. fail names the methods that
// return errBackend.
type fakeGateway struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]bool

	categories []models.Category
	articles   []models.Article
	details    map[string]*models.ArticleDetail
	entries    []models.SitemapEntry

	lastOffset int
	lastLimit  int
	viewed     []string
}

var errBackend = errors.New("backend unavailable")

var _ content.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		calls:   map[string]int{},
		fail:    map[string]bool{},
		details: map[string]*models.ArticleDetail{},
	}
}

func (f *fakeGateway) hit(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	if f.fail[method] {
		return errBackend
	}
	return nil
}

func (f *fakeGateway) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeGateway) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeGateway) filter(keep func(models.Article) bool, offset, limit int) []models.Article {
	var out []models.Article
	for _, a := range f.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	if offset >= len(out) {
		return []models.Article{}
	}
	end := min(offset+limit, len(out))
	return out[offset:end]
}

func inCategory(slug string) func(models.Article) bool {
	return func(a models.Article) bool { return a.Category != nil && a.Category.Slug.Current == slug }
}

func (f *fakeGateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if err := f.hit("FetchCategories"); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeGateway) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if err := f.hit("FetchCategoryBySlug"); err != nil {
		return nil, err
	}
	for _, c := range f.categories {
		if c.Slug.Current == slug {
			return &c, nil
		}
	}
	return nil, content.ErrNotFound
}

func (f *fakeGateway) FetchFeaturedArticles(ctx context.Context, limit int) ([]models.Article, error) {
	if err := f.hit("FetchFeaturedArticles"); err != nil {
		return nil, err
	}
	return f.filter(func(a models.Article) bool { return a.Featured }, 0, limit), nil
}

func (f *fakeGateway) FetchTrendingArticles(ctx context.Context, limit int) ([]models.Article, error) {
	if err := f.hit("FetchTrendingArticles"); err != nil {
		return nil, err
	}
	return f.filter(func(models.Article) bool { return true }, 0, limit), nil
}

func (f *fakeGateway) FetchBreakingNews(ctx context.Context, limit int) ([]models.Article, error) {
	if err := f.hit("FetchBreakingNews"); err != nil {
		return nil, err
	}
	return f.filter(func(a models.Article) bool { return a.Breaking }, 0, limit), nil
}

func (f *fakeGateway) FetchLatestArticles(ctx context.Context, limit int) ([]models.Article, error) {
	if err := f.hit("FetchLatestArticles"); err != nil {
		return nil, err
	}
	return f.filter(func(models.Article) bool { return true }, 0, limit), nil
}

func (f *fakeGateway) FetchArticlesByCategory(ctx context.Context, slug string, offset, limit int) ([]models.Article, error) {
	if err := f.hit("FetchArticlesByCategory"); err != nil {
		return nil, err
	}
	if err := f.hit("FetchArticlesByCategory:" + slug); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastOffset, f.lastLimit = offset, limit
	f.mu.Unlock()
	return f.filter(inCategory(slug), offset, limit), nil
}

func (f *fakeGateway) CountArticlesByCategory(ctx context.Context, slug string) (int, error) {
	if err := f.hit("CountArticlesByCategory"); err != nil {
		return 0, err
	}
	return len(f.filter(inCategory(slug), 0, len(f.articles))), nil
}

func (f *fakeGateway) FetchArticleBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	if err := f.hit("FetchArticleBySlug"); err != nil {
		return nil, err
	}
	if d, ok := f.details[slug]; ok {
		return d, nil
	}
	return nil, content.ErrNotFound
}

func (f *fakeGateway) FetchRelatedArticles(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Article, error) {
	if err := f.hit("FetchRelatedArticles"); err != nil {
		return nil, err
	}
	return f.filter(func(a models.Article) bool {
		return a.Category != nil && a.Category.ID == categoryID && a.ID != excludeID
	}, 0, limit), nil
}

func (f *fakeGateway) SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	if err := f.hit("SearchArticles"); err != nil {
		return nil, err
	}
	return f.filter(func(models.Article) bool { return true }, 0, limit), nil
}

func (f *fakeGateway) IncrementArticleViews(ctx context.Context, articleID string) error {
	if err := f.hit("IncrementArticleViews"); err != nil {
		return err
	}
	f.mu.Lock()
	f.viewed = append(f.viewed, articleID)
	f.mu.Unlock()
	return nil
}

func (f *fakeGateway) FetchSitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	if err := f.hit("FetchSitemapEntries"); err != nil {
		return nil, err
	}
	return f.entries, nil
}

func (f *fakeGateway) Ping(ctx context.Context) error {
	return f.hit("Ping")
}

var fixedNow = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func testDeps(g content.Gateway) Deps {
	cfg := config.AppConfig{}
	cfg.ApplyDefaults()
	return Deps{
		Gateway: g,
		Listing: cfg.Listing,
		Site:    config.SiteConfig{Name: "বাংলা নিউজ", BaseURL: "https://banglanews.test"},
		Now:     func() time.Time { return fixedNow },
	}
}

func category(id, slug, title string) models.Category {
	return models.Category{ID: id, Title: title, Slug: models.Slug{Current: slug}}
}

func article(id, slug string, c models.Category, publishedAgo time.Duration) models.Article {
	return models.Article{
		ID:          id,
		Title:       "শিরোনাম " + id,
		Slug:        models.Slug{Current: slug},
		Excerpt:     "এটি একটি পরীক্ষামূলক সারাংশ যা কার্ডে দেখানো হবে এবং প্রয়োজনে ছোট করা হবে যাতে কার্ডের জায়গায় সুন্দরভাবে আঁটে",
		PublishedAt: fixedNow.Add(-publishedAgo),
		Category:    &models.CategoryRef{ID: c.ID, Title: c.Title, Slug: c.Slug},
		Author:      &models.AuthorRef{ID: "u1", Name: "লেখক"},
	}
}
