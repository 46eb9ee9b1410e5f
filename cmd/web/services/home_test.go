package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bangla-news/models"
)

func homeFixture() *fakeGateway {
	g := newFakeGateway()
	sports := category("c1", "sports", "খেলা")
	politics := category("c2", "politics", "রাজনীতি")
	g.categories = []models.Category{sports, politics}

	for i := 0; i < 7; i++ {
		a := article(fmt.Sprintf("s%d", i), fmt.Sprintf("sports-%d", i), sports, time.Duration(i+1)*time.Hour)
		a.Featured = i < 2
		a.Breaking = i == 0
		g.articles = append(g.articles, a)
	}
	g.articles = append(g.articles, article("p0", "politics-0", politics, 10*time.Minute))
	return g
}

func TestHomeGet(t *testing.T) {
	g := homeFixture()
	deps := testDeps(g)
	svc := NewHomeService(deps, NewLayoutService(deps))

	page := svc.Get(context.Background())

	require.Len(t, page.Featured, 2)
	assert.Equal(t, "s0", page.Featured[0].ID)
	assert.LessOrEqual(t, len([]rune(page.Featured[0].Excerpt)), LeadExcerptLength+3)
	assert.LessOrEqual(t, len([]rune(page.Featured[1].Excerpt)), CardExcerptLength+3)
	assert.Len(t, page.Trending, 5)

	require.Len(t, page.Sections, 2)
	assert.Equal(t, "sports", page.Sections[0].Category.Slug)
	assert.Len(t, page.Sections[0].Articles, 6)
	assert.True(t, page.Sections[0].HasMore)
	assert.Equal(t, "politics", page.Sections[1].Category.Slug)
	assert.Len(t, page.Sections[1].Articles, 1)
	assert.False(t, page.Sections[1].HasMore)

	assert.Len(t, page.Layout.Categories, 2)
	require.Len(t, page.Layout.BreakingNews, 1)
	assert.Equal(t, "/article/sports-0", page.Layout.BreakingNews[0].URL)
	assert.Equal(t, "মঙ্গলবার, ০৫ মার্চ ২০২৪", page.Layout.Today)
	assert.Equal(t, ThemeLight, page.Layout.Theme)

	assert.Equal(t, 1, g.count("FetchCategories"))
}

func TestHomeGetPartialFailure(t *testing.T) {
	g := homeFixture()
	g.fail["FetchFeaturedArticles"] = true
	g.fail["FetchArticlesByCategory:sports"] = true
	deps := testDeps(g)
	svc := NewHomeService(deps, NewLayoutService(deps))

	page := svc.Get(context.Background())

	assert.NotNil(t, page.Featured)
	assert.Empty(t, page.Featured)
	assert.Len(t, page.Trending, 5)

	require.Len(t, page.Sections, 2)
	assert.Empty(t, page.Sections[0].Articles)
	assert.False(t, page.Sections[0].HasMore)
	assert.Len(t, page.Sections[1].Articles, 1)
}

func TestHomeGetCategoriesDown(t *testing.T) {
	g := homeFixture()
	g.fail["FetchCategories"] = true
	deps := testDeps(g)
	svc := NewHomeService(deps, NewLayoutService(deps))

	page := svc.Get(context.Background())

	assert.Empty(t, page.Sections)
	assert.Empty(t, page.Layout.Categories)
	assert.Len(t, page.Featured, 2)
	assert.Equal(t, 0, g.count("FetchArticlesByCategory"))
}

func TestArticleCardFormatting(t *testing.T) {
	c := category("c1", "sports", "খেলা")
	a := article("a1", "match", c, 3*time.Hour)
	a.Views = 15000
	a.MainImage = &models.Image{URL: "https://cdn/x.jpg"}

	card := articleCard(a, CardExcerptLength, fixedNow)
	assert.Equal(t, "/article/match", card.URL)
	assert.Equal(t, "৩ ঘন্টা আগে", card.TimeAgo)
	assert.Equal(t, "০৫ মার্চ ২০২৪", card.PublishedDate)
	assert.Equal(t, "১৫হাজার", card.ViewsText)
	assert.Equal(t, a.Title, card.ImageAlt)
	require.NotNil(t, card.Category)
	assert.Equal(t, models.DefaultCategoryColor, card.Category.Color)
	assert.Equal(t, "/category/sports", card.Category.URL)
	assert.Equal(t, "লেখক", card.AuthorName)
}
