// Package publish flips unpublished blog posts live in bulk.
package publish

import (
	"context"
	"log/slog"
	"time"

	"toolhaven/internal/middleware"
	"toolhaven/internal/models"

	"gorm.io/gorm"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Options selects which unpublished posts to publish. Exactly one mode
// applies: an explicit slug list, a 1-based row range over unpublished posts
// ordered by creation time, or everything.
type Options struct {
	Slugs []string
	Start int
	End   int
	All   bool
}

// Run publishes the selected posts, stamping published_at with the current
// time. Already-published rows are never touched. When no selector mode
// matches the call is a logged no-op.
func Run(ctx context.Context, db *gorm.DB, opts Options) (int, error) {
	now := timeNow()
	updates := map[string]any{
		"published":    true,
		"published_at": now,
		"updated_at":   now,
	}

	unpublished := func() *gorm.DB {
		return db.WithContext(ctx).Model(&models.BlogPost{}).Where("published = ?", false)
	}

	switch {
	case len(opts.Slugs) > 0:
		res := unpublished().Where("slug IN ?", opts.Slugs).Updates(updates)
		logOutcome("slugs", int(res.RowsAffected))
		return int(res.RowsAffected), res.Error

	case opts.Start > 0 && opts.End >= opts.Start:
		var ids []uint
		err := unpublished().
			Order("created_at ASC").
			Offset(opts.Start - 1).
			Limit(opts.End - opts.Start + 1).
			Pluck("id", &ids).Error
		if err != nil {
			return 0, err
		}
		if len(ids) == 0 {
			logOutcome("range", 0)
			return 0, nil
		}
		res := db.WithContext(ctx).Model(&models.BlogPost{}).Where("id IN ?", ids).Updates(updates)
		logOutcome("range", int(res.RowsAffected))
		return int(res.RowsAffected), res.Error

	case opts.All:
		res := unpublished().Updates(updates)
		logOutcome("all", int(res.RowsAffected))
		return int(res.RowsAffected), res.Error

	default:
		middleware.Logger.Info("No valid publish options")
		return 0, nil
	}
}

func logOutcome(mode string, count int) {
	middleware.Logger.Info("batch publish completed",
		slog.String("mode", mode),
		slog.Int("published", count),
	)
}
