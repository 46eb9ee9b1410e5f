// Package gateway builds the content.Gateway selected by content.backend.
package gateway

import (
	"context"
	"fmt"
	"time"

	"bangla-news/internal/logger"
	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/db"
	"bangla-news/repositories"
	"bangla-news/sanity"
)

// New returns the configured gateway and a cleanup func that releases it.
func New(ctx context.Context, cfg config.ContentConfig) (content.Gateway, func(), error) {
	switch cfg.Backend {
	case config.BackendSanity:
		logger.InfoWithFields("content backend ready", logger.Fields{
			"backend": cfg.Backend,
			"project": cfg.Sanity.ProjectID,
			"dataset": cfg.Sanity.Dataset,
			"cdn":     cfg.Sanity.UseCDN,
		})
		return sanity.New(cfg.Sanity), func() {}, nil

	case config.BackendMongo:
		if err := db.Init(ctx, cfg.Mongo); err != nil {
			return nil, nil, fmt.Errorf("mongo init: %w", err)
		}
		logger.InfoWithFields("content backend ready", logger.Fields{
			"backend":  cfg.Backend,
			"database": cfg.Mongo.Database,
		})
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Disconnect(ctx); err != nil {
				logger.Log.Errorf("mongo disconnect: %v", err)
			}
		}
		return repositories.NewGateway(db.Database()), cleanup, nil
	}
	return nil, nil, fmt.Errorf("unknown content backend %q", cfg.Backend)
}
