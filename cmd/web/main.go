package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"bangla-news/cmd/internal/gateway"
	"bangla-news/internal/logger"
	"bangla-news/cmd/web/router"
	"bangla-news/cmd/web/services"
	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/eventbus"
)

// @title           Bangla News API
// @version         1.0
// @description     Page view models for the Bangla news site
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, closeGateway, err := gateway.New(ctx, cfg.Content)
	if err != nil {
		logger.Log.Errorf("failed to init content gateway: %v", err)
		os.Exit(1)
	}
	defer closeGateway()

	recorder, closeRecorder, err := newViewRecorder(cfg, gw)
	if err != nil {
		logger.Log.Errorf("failed to init view recorder: %v", err)
		os.Exit(1)
	}

	r := router.New(cfg, gw, recorder)
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("web server listening", logger.Fields{
			"addr":    cfg.Server.Addr,
			"backend": cfg.Content.Backend,
			"views":   cfg.Views.Mode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("web server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down web server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("web server shutdown: %v", err)
	}

	// finish pending view writes before closing the producer
	recorder.Wait()
	closeRecorder()

	logger.Log.Info("web server stopped")
}

// newViewRecorder picks the view counting path from views.mode.
func newViewRecorder(cfg config.AppConfig, gw content.Gateway) (services.ViewRecorder, func(), error) {
	if cfg.Views.Mode != config.ViewsModeKafka {
		return services.NewDirectViewRecorder(gw, cfg.Views.Timeout), func() {}, nil
	}

	if err := eventbus.EnsureTopic(cfg.Kafka.Brokers, cfg.Kafka.Topic, 3); err != nil {
		logger.Log.Errorf("failed to ensure topic %s: %v", cfg.Kafka.Topic, err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, err
	}
	return services.NewEventViewRecorder(bus, cfg.Kafka.Topic, cfg.Views.Timeout), bus.Close, nil
}
