package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bangla-news/cmd/web/dto"
	"bangla-news/content"
	"bangla-news/locale"
	"bangla-news/models"
	"bangla-news/pagination"
)

type CategoryService struct {
	deps   Deps
	layout *LayoutService
}

func NewCategoryService(deps Deps, layout *LayoutService) *CategoryService {
	return &CategoryService{deps: deps, layout: layout}
}

// List returns the navigation categories.
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.deps.Gateway.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	return categoryDTOs(categories), nil
}

// resolve looks up a category. Anything but content.ErrNotFound is wrapped.
func (s *CategoryService) resolve(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.deps.Gateway.FetchCategoryBySlug(ctx, slug)
	if errors.Is(err, content.ErrNotFound) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve category %q: %w", slug, err)
	}
	return category, nil
}

// Get builds one listing page of a category. page < 1 is read as 1 and a
// page past the end is clamped to the last page.
func (s *CategoryService) Get(ctx context.Context, slug string, page int) (dto.CategoryPageDTO, error) {
	var (
		layout     dto.LayoutDTO
		category   *models.Category
		resolveErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		layout, _ = s.layout.Load(ctx)
		return nil
	})
	g.Go(func() error {
		category, resolveErr = s.resolve(ctx, slug)
		return nil
	})
	_ = g.Wait()
	if resolveErr != nil {
		return dto.CategoryPageDTO{}, resolveErr
	}

	pageSize := s.deps.Listing.CategoryPageSize
	page = max(page, 1)

	var (
		articles []models.Article
		count    int
	)
	g = errgroup.Group{}
	g.Go(func() error {
		articles = s.slice(ctx, slug, page, pageSize)
		return nil
	})
	g.Go(func() error {
		n, err := s.deps.Gateway.CountArticlesByCategory(ctx, slug)
		if err != nil {
			logBranchFailure(ctx, "count", err)
			return nil
		}
		count = n
		return nil
	})
	_ = g.Wait()

	totalPages := pagination.TotalPages(count, pageSize)
	if clamped := pagination.ClampPage(page, totalPages); clamped != page {
		page = clamped
		articles = s.slice(ctx, slug, page, pageSize)
	}

	return dto.CategoryPageDTO{
		Layout:   layout,
		Category: categoryDTO(*category),
		Articles: articleCards(articles, CardExcerptLength, s.deps.now()),
		Pagination: dto.PaginationDTO{
			Pager:          pagination.NewPager(page, totalPages, s.deps.Listing.Radius()),
			PageSize:       pageSize,
			TotalCount:     count,
			TotalCountText: locale.FormatArticleTotal(count),
		},
	}, nil
}

func (s *CategoryService) slice(ctx context.Context, slug string, page, pageSize int) []models.Article {
	return fetchOrEmpty(ctx, "articles", func(ctx context.Context) ([]models.Article, error) {
		return s.deps.Gateway.FetchArticlesByCategory(ctx, slug, content.PageOffset(page, pageSize), pageSize)
	})
}

// Latest returns the newest limit articles of a category ("load more").
func (s *CategoryService) Latest(ctx context.Context, slug string, limit int) (dto.LatestDTO, error) {
	category, err := s.resolve(ctx, slug)
	if err != nil {
		return dto.LatestDTO{}, err
	}
	articles, err := s.deps.Gateway.FetchArticlesByCategory(ctx, slug, 0, limit)
	if err != nil {
		return dto.LatestDTO{}, fmt.Errorf("latest articles of %q: %w", slug, err)
	}
	return dto.LatestDTO{
		Category: categoryDTO(*category),
		Articles: articleCards(articles, CardExcerptLength, s.deps.now()),
	}, nil
}
