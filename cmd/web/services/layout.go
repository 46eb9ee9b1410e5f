package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bangla-news/cmd/web/dto"
	"bangla-news/locale"
	"bangla-news/models"
)

// Themes a client may pick.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NormalizeTheme returns theme when valid and ThemeLight otherwise.
func NormalizeTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// LayoutService loads the chrome around every page.
type LayoutService struct {
	deps Deps
}

func NewLayoutService(deps Deps) *LayoutService {
	return &LayoutService{deps: deps}
}

// Load fetches nav categories and breaking news in parallel. The raw
// categories are returned too so the home page can reuse them. Theme is left
// for the caller, it lives in the client session.
func (s *LayoutService) Load(ctx context.Context) (dto.LayoutDTO, []models.Category) {
	var (
		categories []models.Category
		breaking   []models.Article
	)

	var g errgroup.Group
	g.Go(func() error {
		categories = fetchOrEmpty(ctx, "categories", s.deps.Gateway.FetchCategories)
		return nil
	})
	g.Go(func() error {
		breaking = fetchOrEmpty(ctx, "breaking", func(ctx context.Context) ([]models.Article, error) {
			return s.deps.Gateway.FetchBreakingNews(ctx, s.deps.Listing.BreakingLimit)
		})
		return nil
	})
	_ = g.Wait()

	ticker := make([]dto.BreakingItemDTO, 0, len(breaking))
	for _, a := range breaking {
		ticker = append(ticker, dto.BreakingItemDTO{Title: a.Title, URL: ArticlePath(a.Slug.Current)})
	}

	return dto.LayoutDTO{
		SiteName:     s.deps.Site.Name,
		Categories:   categoryDTOs(categories),
		BreakingNews: ticker,
		Theme:        ThemeLight,
		Today:        locale.FormatDate(s.deps.now(), locale.LayoutToday),
	}, categories
}
