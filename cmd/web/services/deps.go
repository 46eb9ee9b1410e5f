package services

import (
	"context"
	"time"

	"bangla-news/internal/logger"
	"bangla-news/config"
	"bangla-news/content"
	"bangla-news/trace"
)

// Deps is what every page service needs.
type Deps struct {
	Gateway content.Gateway
	Listing config.ListingConfig
	Site    config.SiteConfig
	// Now is the clock used for relative times. Defaults to time.Now.
	Now func() time.Time
	// Location is the zone dates are shown in. nil keeps the clock's own zone.
	Location *time.Location
}

// now returns the current time in the site zone. Cards convert publish times
// to the same zone, so calendar days follow the reader and not the CMS.
func (d Deps) now() time.Time {
	t := time.Now()
	if d.Now != nil {
		t = d.Now()
	}
	if d.Location != nil {
		t = t.In(d.Location)
	}
	return t
}

// fetchOrEmpty runs one fan-out branch. A failure is logged with the branch
// name and becomes an empty slice so sibling branches are unaffected.
func fetchOrEmpty[T any](ctx context.Context, branch string, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetch(ctx)
	if err != nil {
		logBranchFailure(ctx, branch, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func logBranchFailure(ctx context.Context, branch string, err error) {
	fields := logger.Fields(trace.LogFields(ctx))
	fields["branch"] = branch
	fields["error"] = err.Error()
	logger.ErrorWithFields("page section failed", fields)
}
