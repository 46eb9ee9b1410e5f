package services

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bangla-news/models"
)

func TestSitemap(t *testing.T) {
	g := newFakeGateway()
	published := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	g.entries = []models.SitemapEntry{
		{Kind: models.KindArticle, Slug: "match", PublishedAt: published},
		{Kind: models.KindCategory, Slug: "sports"},
		{Kind: models.KindAuthor, Slug: "someone"},
		{Kind: models.KindArticle, Slug: ""},
	}

	body, err := NewSEOService(testDeps(g)).Sitemap(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), xml.Header))

	var set urlSet
	require.NoError(t, xml.Unmarshal(body, &set))
	require.Len(t, set.URLs, 4)

	assert.Equal(t, "https://banglanews.test", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "hourly", set.URLs[0].ChangeFreq)
	assert.Equal(t, "https://banglanews.test/search", set.URLs[1].Loc)
	assert.Equal(t, "0.8", set.URLs[1].Priority)
	assert.Equal(t, "https://banglanews.test/category/sports", set.URLs[2].Loc)
	assert.Equal(t, "0.9", set.URLs[2].Priority)
	assert.Equal(t, "https://banglanews.test/article/match", set.URLs[3].Loc)
	assert.Equal(t, "0.7", set.URLs[3].Priority)
	assert.Equal(t, "2024-01-02T03:04:05Z", set.URLs[3].LastMod)
}

func TestSitemapBackendFailure(t *testing.T) {
	g := newFakeGateway()
	g.fail["FetchSitemapEntries"] = true
	_, err := NewSEOService(testDeps(g)).Sitemap(context.Background())
	assert.ErrorIs(t, err, errBackend)
}

func TestRobots(t *testing.T) {
	robots := NewSEOService(testDeps(newFakeGateway())).Robots()
	assert.True(t, strings.HasPrefix(robots, "User-agent: *\nAllow: /"))
	assert.Contains(t, robots, "Sitemap: https://banglanews.test/sitemap.xml")
	assert.Contains(t, robots, "Disallow: /api/")
	assert.Contains(t, robots, "User-agent: Twitterbot")
	assert.True(t, strings.HasSuffix(robots, "Crawl-delay: 1"))
}

func TestFeedParsesAsRSS(t *testing.T) {
	g := articleFixture()

	body, err := NewSEOService(testDeps(g)).Feed(context.Background())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(body))
	require.NoError(t, err)
	assert.Equal(t, "rss", feed.FeedType)
	assert.Equal(t, "2.0", feed.FeedVersion)
	assert.Equal(t, "বাংলা নিউজ", feed.Title)
	assert.Equal(t, "bn", feed.Language)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, "https://banglanews.test/article/final", feed.Items[0].Link)
	require.NotNil(t, feed.Items[0].PublishedParsed)
	assert.True(t, feed.Items[0].PublishedParsed.Equal(fixedNow.Add(-2*time.Hour)))
	assert.Equal(t, []string{"খেলা"}, feed.Items[0].Categories)
}
