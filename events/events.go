package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	ArticleViewed EventType = "article.viewed"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// ArticleViewedEvent 는 기사 페이지가 렌더링될 때 한 번 발행된다.
type ArticleViewedEvent struct {
	BaseEvent
	ArticleID string `json:"article_id"`
	Slug      string `json:"slug"`
}

func NewArticleViewedEvent(source, articleID, slug string) ArticleViewedEvent {
	return ArticleViewedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      ArticleViewed,
			Timestamp: time.Now().UTC(),
			Source:    source,
			Version:   "1",
		},
		ArticleID: articleID,
		Slug:      slug,
	}
}
