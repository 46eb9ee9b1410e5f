package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bangla-news/cmd/internal/gateway"
	"bangla-news/internal/logger"
	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/eventbus"
	"bangla-news/events"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Kafka.Brokers == "" {
		logger.Log.Error("kafka.brokers is required for the view counter")
		os.Exit(1)
	}
	if err := eventbus.EnsureTopic(cfg.Kafka.Brokers, cfg.Kafka.Topic, 3); err != nil {
		logger.Log.Errorf("failed to ensure topic %s: %v", cfg.Kafka.Topic, err)
	}

	gw, closeGateway, err := gateway.New(ctx, cfg.Content)
	if err != nil {
		logger.Log.Errorf("failed to init content gateway: %v", err)
		os.Exit(1)
	}
	defer closeGateway()

	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	logger.InfoWithFields("starting view counter", logger.Fields{
		"topic":    cfg.Kafka.Topic,
		"group_id": cfg.Kafka.GroupID,
	})

	handler := countView(gw, cfg.Views.Timeout)
	err = eventbus.SubscribeJSON(ctx, bus, cfg.Kafka.GroupID, cfg.Kafka.Topic, handler)
	if err != nil && ctx.Err() == nil {
		logger.Log.Errorf("view counter stopped: %v", err)
		os.Exit(1)
	}

	logger.Log.Info("view counter stopped")
}

// countView increments the article's view count once per event. A failure is
// returned to the bus, which logs it and commits; views are never retried.
func countView(gw content.Gateway, timeout time.Duration) func(context.Context, events.ArticleViewedEvent, eventbus.Event) error {
	return func(ctx context.Context, evt events.ArticleViewedEvent, meta eventbus.Event) error {
		if evt.ArticleID == "" {
			logger.WarnWithFields("article.viewed without article id", logger.Fields{"event_id": meta.ID})
			return nil
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := gw.IncrementArticleViews(ctx, evt.ArticleID); err != nil {
			return err
		}
		logger.DebugWithFields("article view counted", logger.Fields{
			"article_id": evt.ArticleID,
			"slug":       evt.Slug,
			"request_id": meta.RequestID,
		})
		return nil
	}
}
