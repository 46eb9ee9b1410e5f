package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bangla-news/content"
	"bangla-news/eventbus"
	"bangla-news/events"
)

type countingGateway struct {
	content.Gateway
	ids []string
	err error
}

func (g *countingGateway) IncrementArticleViews(ctx context.Context, articleID string) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	g.ids = append(g.ids, articleID)
	return g.err
}

func TestCountViewIncrements(t *testing.T) {
	gw := &countingGateway{}
	handle := countView(gw, time.Second)

	err := handle(context.Background(), events.NewArticleViewedEvent("web", "a1", "first"), eventbus.Event{ID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, gw.ids)
}

func TestCountViewSkipsEmptyID(t *testing.T) {
	gw := &countingGateway{}
	handle := countView(gw, time.Second)

	require.NoError(t, handle(context.Background(), events.ArticleViewedEvent{}, eventbus.Event{ID: "e2"}))
	assert.Empty(t, gw.ids)
}

func TestCountViewReturnsGatewayError(t *testing.T) {
	gw := &countingGateway{err: content.ErrNotFound}
	handle := countView(gw, time.Second)

	err := handle(context.Background(), events.NewArticleViewedEvent("web", "gone", "gone"), eventbus.Event{})
	assert.ErrorIs(t, err, content.ErrNotFound)
}
