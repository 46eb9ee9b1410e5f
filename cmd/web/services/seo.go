package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"bangla-news/models"
)

// Cache-Control values of the crawler endpoints.
const (
	SitemapCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"
	RobotsCacheControl  = "public, s-maxage=86400, stale-while-revalidate=604800"
	FeedCacheControl    = "public, s-maxage=600, stale-while-revalidate=3600"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	Description string  `xml:"description,omitempty"`
	Category    string  `xml:"category,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type SEOService struct {
	deps Deps
}

func NewSEOService(deps Deps) *SEOService {
	return &SEOService{deps: deps}
}

// Sitemap renders sitemap.xml: home, search, every category and every article.
func (s *SEOService) Sitemap(ctx context.Context) ([]byte, error) {
	entries, err := s.deps.Gateway.FetchSitemapEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap entries: %w", err)
	}

	base := s.deps.Site.BaseURL
	now := s.deps.now().UTC().Format(time.RFC3339)

	set := urlSet{XMLNS: sitemapNS}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: base, LastMod: now, ChangeFreq: "hourly", Priority: "1.0"},
		sitemapURL{Loc: base + "/search", LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
	)

	// categories first, then articles
	for _, e := range entries {
		if e.Kind == models.KindCategory && e.Slug != "" {
			set.URLs = append(set.URLs, sitemapURL{
				Loc: base + CategoryPath(e.Slug), LastMod: now, ChangeFreq: "daily", Priority: "0.9",
			})
		}
	}
	for _, e := range entries {
		if e.Kind != models.KindArticle || e.Slug == "" {
			continue
		}
		u := sitemapURL{Loc: base + ArticlePath(e.Slug), ChangeFreq: "weekly", Priority: "0.7"}
		if !e.PublishedAt.IsZero() {
			u.LastMod = e.PublishedAt.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}

	return marshalXML(set)
}

// Robots renders robots.txt.
func (s *SEOService) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")
	b.WriteString("# Sitemap\nSitemap: " + s.deps.Site.BaseURL + "/sitemap.xml\n\n")
	b.WriteString("# Disallow admin and internal paths\nDisallow: /admin/\nDisallow: /_next/\nDisallow: /api/\n\n")
	b.WriteString("# Allow common crawlers\n")
	for _, agent := range []string{"Googlebot", "Bingbot", "Slurp", "facebookexternalhit", "Twitterbot"} {
		b.WriteString("User-agent: " + agent + "\nAllow: /\n\n")
	}
	b.WriteString("# Crawl delay for respectful crawling\nCrawl-delay: 1")
	return b.String()
}

// Feed renders an RSS 2.0 feed of the latest articles.
func (s *SEOService) Feed(ctx context.Context) ([]byte, error) {
	articles, err := s.deps.Gateway.FetchLatestArticles(ctx, s.deps.Listing.FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("feed articles: %w", err)
	}

	base := s.deps.Site.BaseURL
	channel := rssChannel{
		Title:         s.deps.Site.Name,
		Link:          base,
		Description:   s.deps.Site.Name + " - সর্বশেষ সংবাদ",
		Language:      "bn",
		LastBuildDate: s.deps.now().UTC().Format(time.RFC1123Z),
		Items:         make([]rssItem, 0, len(articles)),
	}
	for _, a := range articles {
		link := base + ArticlePath(a.Slug.Current)
		item := rssItem{
			Title:       a.Title,
			Link:        link,
			GUID:        rssGUID{Value: link, IsPermaLink: true},
			Description: a.Excerpt,
		}
		if !a.PublishedAt.IsZero() {
			item.PubDate = a.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		if a.Category != nil {
			item.Category = a.Category.Title
		}
		channel.Items = append(channel.Items, item)
	}

	return marshalXML(rssFeed{Version: "2.0", Channel: channel})
}

func marshalXML(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
