package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bangla-news/content"
	"bangla-news/eventbus"
	"bangla-news/events"
	"bangla-news/models"
)

func articleFixture() *fakeGateway {
	g := newFakeGateway()
	sports := category("c1", "sports", "খেলা")
	g.categories = []models.Category{sports}

	main := article("a0", "final", sports, 2*time.Hour)
	main.Views = 12
	main.Excerpt = ""
	main.MainImage = &models.Image{URL: "https://cdn/final.jpg", Caption: "মাঠের ছবি"}
	g.articles = []models.Article{
		main,
		article("a1", "semi", sports, 3*time.Hour),
		article("a2", "quarter", sports, 4*time.Hour),
	}
	g.details["final"] = &models.ArticleDetail{
		Article: main,
		Body: models.Body{
			{Type: models.BlockTypeText, Children: []models.Span{{Text: "বাংলাদেশ ফাইনালে জিতেছে"}}},
			{Type: models.BlockTypeImage, Alt: "ছবি"},
		},
		Profile: &models.AuthorProfile{
			Name:     "লেখক",
			Position: "ক্রীড়া প্রতিবেদক",
			Bio:      models.Body{{Type: models.BlockTypeText, Children: []models.Span{{Text: "পরিচিতি"}}}},
		},
	}
	return g
}

func TestArticleGet(t *testing.T) {
	g := articleFixture()
	deps := testDeps(g)
	views := NewDirectViewRecorder(g, time.Second)
	svc := NewArticleService(deps, NewLayoutService(deps), views)

	page, err := svc.Get(context.Background(), "final")
	require.NoError(t, err)
	views.Wait()

	a := page.Article
	assert.Equal(t, "a0", a.ID)
	assert.Equal(t, "বাংলাদেশ ফাইনালে জিতেছে", a.Excerpt)
	assert.Equal(t, "১ মিনিট পড়ার সময়", a.ReadingTime)
	assert.Equal(t, "১২ বার পড়া হয়েছে", a.ReadCount)
	assert.Equal(t, "মাঠের ছবি", a.ImageCaption)
	assert.Equal(t, []string{}, a.Tags)
	require.NotNil(t, a.Author)
	assert.Equal(t, "ক্রীড়া প্রতিবেদক", a.Author.Position)
	assert.Equal(t, "পরিচিতি", a.Author.Bio)

	require.Len(t, page.Related, 2)
	for _, r := range page.Related {
		assert.NotEqual(t, "a0", r.ID)
	}

	require.Len(t, page.Share, 5)
	assert.Equal(t, "facebook", page.Share[0].Network)
	assert.Contains(t, page.Share[0].URL, "https%3A%2F%2Fbanglanews.test%2Farticle%2Ffinal")

	assert.Equal(t, []string{"a0"}, g.viewed)
}

func TestArticleGetNotFound(t *testing.T) {
	g := articleFixture()
	deps := testDeps(g)
	views := NewDirectViewRecorder(g, time.Second)
	svc := NewArticleService(deps, NewLayoutService(deps), views)

	_, err := svc.Get(context.Background(), "missing")
	views.Wait()
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.Equal(t, 0, g.count("IncrementArticleViews"))
	assert.Equal(t, 0, g.count("FetchRelatedArticles"))
}

func TestArticleGetRelatedAndViewFailuresAreSwallowed(t *testing.T) {
	g := articleFixture()
	g.fail["FetchRelatedArticles"] = true
	g.fail["IncrementArticleViews"] = true
	deps := testDeps(g)
	views := NewDirectViewRecorder(g, time.Second)
	svc := NewArticleService(deps, NewLayoutService(deps), views)

	page, err := svc.Get(context.Background(), "final")
	require.NoError(t, err)
	views.Wait()

	assert.Empty(t, page.Related)
	assert.NotNil(t, page.Related)
	assert.Equal(t, 1, g.count("IncrementArticleViews"))
}

func TestViewRecordSurvivesRequestCancel(t *testing.T) {
	g := articleFixture()
	views := NewDirectViewRecorder(g, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	views.Record(ctx, "a1", "semi")
	cancel()
	views.Wait()

	assert.Equal(t, []string{"a1"}, g.viewed)
}

type fakePublisher struct {
	mu     sync.Mutex
	topic  string
	events []eventbus.Event
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	p.events = append(p.events, event)
	return nil
}

func TestEventViewRecorderPublishes(t *testing.T) {
	pub := &fakePublisher{}
	views := NewEventViewRecorder(pub, "banglanews.article.views", time.Second)

	views.Record(context.Background(), "a1", "semi")
	views.Record(context.Background(), "", "ignored")
	views.Wait()

	require.Len(t, pub.events, 1)
	assert.Equal(t, "banglanews.article.views", pub.topic)

	payload, err := eventbus.DecodeJSON[events.ArticleViewedEvent](pub.events[0])
	require.NoError(t, err)
	assert.Equal(t, "a1", payload.ArticleID)
	assert.Equal(t, events.ArticleViewed, payload.Type)
	assert.Equal(t, payload.ID, pub.events[0].ID)
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("https://x.test/article/a b", "শিরোনাম ১")
	networks := make([]string, 0, len(links))
	for _, l := range links {
		networks = append(networks, l.Network)
		assert.False(t, strings.Contains(l.URL, "+"), l.URL)
	}
	assert.Equal(t, []string{"facebook", "twitter", "whatsapp", "linkedin", "telegram"}, networks)
	assert.Equal(t, "https://wa.me/?text=%E0%A6%B6%E0%A6%BF%E0%A6%B0%E0%A7%8B%E0%A6%A8%E0%A6%BE%E0%A6%AE%20%E0%A7%A7%20https%3A%2F%2Fx.test%2Farticle%2Fa%20b", links[2].URL)
}
