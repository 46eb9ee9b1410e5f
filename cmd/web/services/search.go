package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bangla-news/cmd/web/dto"
	"bangla-news/locale"
	"bangla-news/models"
	"bangla-news/textutil"
)

type SearchService struct {
	deps   Deps
	layout *LayoutService
}

func NewSearchService(deps Deps, layout *LayoutService) *SearchService {
	return &SearchService{deps: deps, layout: layout}
}

// Search sanitizes raw and queries the gateway. An empty sanitized query
// returns no results without touching the gateway.
func (s *SearchService) Search(ctx context.Context, raw string) dto.SearchResultDTO {
	sanitized := textutil.SanitizeSearchQuery(raw)
	out := dto.SearchResultDTO{
		Query:     raw,
		Sanitized: sanitized,
		Results:   []dto.ArticleCardDTO{},
	}
	if sanitized == "" {
		out.CountText = SearchCountText(0)
		return out
	}

	articles := fetchOrEmpty(ctx, "search", func(ctx context.Context) ([]models.Article, error) {
		return s.deps.Gateway.SearchArticles(ctx, sanitized, s.deps.Listing.SearchLimit)
	})
	out.Results = articleCards(articles, CardExcerptLength, s.deps.now())
	out.Count = len(out.Results)
	out.CountText = SearchCountText(out.Count)
	return out
}

// Page is Search plus the layout, fetched in parallel.
func (s *SearchService) Page(ctx context.Context, raw string) dto.SearchPageDTO {
	var page dto.SearchPageDTO

	var g errgroup.Group
	g.Go(func() error {
		page.Layout, _ = s.layout.Load(ctx)
		return nil
	})
	g.Go(func() error {
		page.SearchResultDTO = s.Search(ctx, raw)
		return nil
	})
	_ = g.Wait()
	return page
}

func SearchCountText(n int) string {
	if n == 0 {
		return "কোনো ফলাফল পাওয়া যায়নি"
	}
	return locale.ToBanglaDigits(n) + "টি ফলাফল পাওয়া গেছে"
}
