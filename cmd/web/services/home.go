package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bangla-news/cmd/web/dto"
	"bangla-news/models"
)

// maxSectionFetches bounds the per-category fan-out.
const maxSectionFetches = 8

type HomeService struct {
	deps   Deps
	layout *LayoutService
}

func NewHomeService(deps Deps, layout *LayoutService) *HomeService {
	return &HomeService{deps: deps, layout: layout}
}

// Get assembles the home page in two parallel phases: layout (with the
// category list), featured and trending first, then the latest articles of
// every category. Any failing branch becomes an empty slot.
func (s *HomeService) Get(ctx context.Context) dto.HomePageDTO {
	var (
		layout     dto.LayoutDTO
		categories []models.Category
		featured   []models.Article
		trending   []models.Article
	)

	var g errgroup.Group
	g.Go(func() error {
		layout, categories = s.layout.Load(ctx)
		return nil
	})
	g.Go(func() error {
		featured = fetchOrEmpty(ctx, "featured", func(ctx context.Context) ([]models.Article, error) {
			return s.deps.Gateway.FetchFeaturedArticles(ctx, s.deps.Listing.FeaturedLimit)
		})
		return nil
	})
	g.Go(func() error {
		trending = fetchOrEmpty(ctx, "trending", func(ctx context.Context) ([]models.Article, error) {
			return s.deps.Gateway.FetchTrendingArticles(ctx, s.deps.Listing.TrendingLimit)
		})
		return nil
	})
	_ = g.Wait()

	now := s.deps.now()
	return dto.HomePageDTO{
		Layout:   layout,
		Featured: featuredCards(featured, now),
		Trending: articleCards(trending, CardExcerptLength, now),
		Sections: s.sections(ctx, categories),
	}
}

func (s *HomeService) sections(ctx context.Context, categories []models.Category) []dto.CategorySectionDTO {
	limit := s.deps.Listing.CategoryPreviewLimit
	latest := make([][]models.Article, len(categories))

	var g errgroup.Group
	g.SetLimit(maxSectionFetches)
	for i, c := range categories {
		i, c := i, c
		g.Go(func() error {
			latest[i] = fetchOrEmpty(ctx, "category:"+c.Slug.Current, func(ctx context.Context) ([]models.Article, error) {
				return s.deps.Gateway.FetchArticlesByCategory(ctx, c.Slug.Current, 0, limit)
			})
			return nil
		})
	}
	_ = g.Wait()

	now := s.deps.now()
	out := make([]dto.CategorySectionDTO, 0, len(categories))
	for i, c := range categories {
		out = append(out, dto.CategorySectionDTO{
			Category: categoryDTO(c),
			Articles: articleCards(latest[i], CardExcerptLength, now),
			HasMore:  limit > 0 && len(latest[i]) >= limit,
		})
	}
	return out
}
