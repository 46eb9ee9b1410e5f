package services

import (
	"context"
	"sync"
	"time"

	"bangla-news/internal/logger"
	"bangla-news/content"
	"bangla-news/eventbus"
	"bangla-news/events"
	"bangla-news/trace"
)

// ViewRecorder counts one view of an article. Record must not block the
// request: the write happens in the background and failures are only logged.
type ViewRecorder interface {
	Record(ctx context.Context, articleID, slug string)
	// Wait blocks until in-flight writes finish. Used on shutdown and in tests.
	Wait()
}

// background runs write detached from the request context, with its own timeout.
type background struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func (b *background) run(ctx context.Context, articleID string, write func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ctx, cancel := context.WithTimeout(detached, b.timeout)
		defer cancel()
		if err := write(ctx); err != nil {
			fields := logger.Fields(trace.LogFields(ctx))
			fields["article_id"] = articleID
			fields["error"] = err.Error()
			logger.WarnWithFields("view count update dropped", fields)
		}
	}()
}

func (b *background) Wait() { b.wg.Wait() }

// DirectViewRecorder patches the counter through the gateway.
type DirectViewRecorder struct {
	background
	gateway content.Gateway
}

func NewDirectViewRecorder(gateway content.Gateway, timeout time.Duration) *DirectViewRecorder {
	return &DirectViewRecorder{background: background{timeout: timeout}, gateway: gateway}
}

func (r *DirectViewRecorder) Record(ctx context.Context, articleID, slug string) {
	if articleID == "" {
		return
	}
	r.run(ctx, articleID, func(ctx context.Context) error {
		return r.gateway.IncrementArticleViews(ctx, articleID)
	})
}

// EventViewRecorder publishes article.viewed; cmd/viewcounter applies it.
type EventViewRecorder struct {
	background
	publisher eventbus.Publisher
	topic     string
	source    string
}

func NewEventViewRecorder(publisher eventbus.Publisher, topic string, timeout time.Duration) *EventViewRecorder {
	return &EventViewRecorder{
		background: background{timeout: timeout},
		publisher:  publisher,
		topic:      topic,
		source:     "web",
	}
}

func (r *EventViewRecorder) Record(ctx context.Context, articleID, slug string) {
	if articleID == "" {
		return
	}
	r.run(ctx, articleID, func(ctx context.Context) error {
		payload := events.NewArticleViewedEvent(r.source, articleID, slug)
		evt, err := eventbus.NewJSONEvent(payload.ID, payload)
		if err != nil {
			return err
		}
		evt.RequestID = trace.RequestIDFromContext(ctx)
		return r.publisher.Publish(ctx, r.topic, evt)
	})
}
