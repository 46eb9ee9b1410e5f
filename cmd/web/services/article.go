package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"bangla-news/cmd/web/dto"
	"bangla-news/content"
	"bangla-news/locale"
	"bangla-news/models"
	"bangla-news/textutil"
)

type ArticleService struct {
	deps   Deps
	layout *LayoutService
	views  ViewRecorder
}

func NewArticleService(deps Deps, layout *LayoutService, views ViewRecorder) *ArticleService {
	return &ArticleService{deps: deps, layout: layout, views: views}
}

// Get loads an article page: the article and layout in parallel, then related
// articles of the same category. A view is recorded in the background.
func (s *ArticleService) Get(ctx context.Context, slug string) (dto.ArticlePageDTO, error) {
	var (
		layout   dto.LayoutDTO
		article  *models.ArticleDetail
		fetchErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		layout, _ = s.layout.Load(ctx)
		return nil
	})
	g.Go(func() error {
		article, fetchErr = s.deps.Gateway.FetchArticleBySlug(ctx, slug)
		return nil
	})
	_ = g.Wait()

	if errors.Is(fetchErr, content.ErrNotFound) {
		return dto.ArticlePageDTO{}, content.ErrNotFound
	}
	if fetchErr != nil {
		return dto.ArticlePageDTO{}, fmt.Errorf("article %q: %w", slug, fetchErr)
	}

	related := []models.Article{}
	if article.Category != nil && article.Category.ID != "" {
		related = fetchOrEmpty(ctx, "related", func(ctx context.Context) ([]models.Article, error) {
			return s.deps.Gateway.FetchRelatedArticles(ctx, article.Category.ID, article.ID, s.deps.Listing.RelatedLimit)
		})
	}

	s.views.Record(ctx, article.ID, article.Slug.Current)

	pageURL := s.deps.Site.BaseURL + ArticlePath(article.Slug.Current)
	return dto.ArticlePageDTO{
		Layout:  layout,
		Article: s.detail(article),
		Related: articleCards(related, CardExcerptLength, s.deps.now()),
		Share:   ShareLinks(pageURL, article.Title),
	}, nil
}

func (s *ArticleService) detail(a *models.ArticleDetail) dto.ArticleDetailDTO {
	card := articleCard(a.Article, DetailExcerptLength, s.deps.now())
	plain := textutil.ExtractPlainText(a.Body)
	if a.Excerpt == "" {
		card.Excerpt = textutil.Truncate(strings.TrimSpace(plain), DetailExcerptLength)
	}

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	body := a.Body
	if body == nil {
		body = models.Body{}
	}

	out := dto.ArticleDetailDTO{
		ArticleCardDTO: card,
		Body:           body,
		Tags:           tags,
		ReadingTime:    textutil.EstimateReadingTime(plain),
		ReadCount:      locale.FormatReadCount(a.Views),
	}
	if a.MainImage != nil {
		out.ImageCaption = a.MainImage.Caption
	}
	out.Author = authorDTO(a)
	return out
}

func authorDTO(a *models.ArticleDetail) *dto.AuthorDTO {
	switch {
	case a.Profile != nil:
		author := &dto.AuthorDTO{
			Name:     a.Profile.Name,
			Slug:     a.Profile.Slug.Current,
			Position: a.Profile.Position,
			Bio:      textutil.ExtractPlainText(a.Profile.Bio),
		}
		if a.Profile.Image != nil {
			author.ImageURL = a.Profile.Image.URL
		}
		return author
	case a.Author != nil:
		author := &dto.AuthorDTO{Name: a.Author.Name}
		if a.Author.Image != nil {
			author.ImageURL = a.Author.Image.URL
		}
		return author
	}
	return nil
}
