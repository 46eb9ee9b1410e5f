package services

import (
	"time"

	"bangla-news/cmd/web/dto"
	"bangla-news/locale"
	"bangla-news/models"
	"bangla-news/textutil"
)

// Excerpt lengths of the card variants.
const (
	LeadExcerptLength   = 120
	CardExcerptLength   = 80
	DetailExcerptLength = 200
)

func ArticlePath(slug string) string  { return "/article/" + slug }
func CategoryPath(slug string) string { return "/category/" + slug }

func categoryDTO(c models.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug.Current,
		URL:         CategoryPath(c.Slug.Current),
		Description: c.Description,
		Color:       c.DisplayColor(),
	}
}

func categoryDTOs(categories []models.Category) []dto.CategoryDTO {
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryDTO(c))
	}
	return out
}

func articleCard(a models.Article, excerptLength int, now time.Time) dto.ArticleCardDTO {
	published := a.PublishedAt.In(now.Location())
	card := dto.ArticleCardDTO{
		ID:            a.ID,
		Title:         a.Title,
		Slug:          a.Slug.Current,
		URL:           ArticlePath(a.Slug.Current),
		Excerpt:       textutil.Truncate(a.Excerpt, excerptLength),
		PublishedAt:   a.PublishedAt,
		TimeAgo:       locale.RelativeTime(published, now),
		PublishedDate: locale.FormatDate(published, locale.LayoutLongDate),
		Views:         max(a.Views, 0),
		ViewsText:     locale.FormatViewCount(a.Views),
		Featured:      a.Featured,
		Breaking:      a.Breaking,
	}
	if a.PublishedAt.IsZero() {
		card.PublishedDate = ""
	}
	if a.MainImage != nil {
		card.ImageURL = a.MainImage.URL
		card.ImageAlt = a.MainImage.Alt
		if card.ImageAlt == "" {
			card.ImageAlt = a.Title
		}
	}
	if a.Category != nil {
		color := a.Category.Color
		if color == "" {
			color = models.DefaultCategoryColor
		}
		card.Category = &dto.CategoryBadgeDTO{
			Title: a.Category.Title,
			Slug:  a.Category.Slug.Current,
			Color: color,
			URL:   CategoryPath(a.Category.Slug.Current),
		}
	}
	if a.Author != nil {
		card.AuthorName = a.Author.Name
	}
	return card
}

func articleCards(articles []models.Article, excerptLength int, now time.Time) []dto.ArticleCardDTO {
	out := make([]dto.ArticleCardDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleCard(a, excerptLength, now))
	}
	return out
}

// featuredCards renders the lead card with the long excerpt and the rest short.
func featuredCards(articles []models.Article, now time.Time) []dto.ArticleCardDTO {
	out := make([]dto.ArticleCardDTO, 0, len(articles))
	for i, a := range articles {
		length := CardExcerptLength
		if i == 0 {
			length = LeadExcerptLength
		}
		out = append(out, articleCard(a, length, now))
	}
	return out
}
