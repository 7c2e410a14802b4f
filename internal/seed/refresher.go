package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// WindowWriter replaces every stored working-hours window.
type WindowWriter interface {
	ReplaceWorkingHours(ctx context.Context, windows []models.WorkingHoursWindow) error
}

// HorizonRefresher keeps the stored windows covering `days` days from the
// current date, so the bookable horizon moves with the clock.
type HorizonRefresher struct {
	dataset *Dataset
	store   WindowWriter
	clock   timezone.Clock
	days    int
	log     *zap.Logger
}

func NewHorizonRefresher(ds *Dataset, store WindowWriter, clock timezone.Clock, days int, log *zap.Logger) *HorizonRefresher {
	return &HorizonRefresher{
		dataset: ds,
		store:   store,
		clock:   clock,
		days:    days,
		log:     log,
	}
}

// Refresh re-expands the weekly template from today.
func (r *HorizonRefresher) Refresh(ctx context.Context) error {
	windows := r.dataset.Windows(r.clock(), r.days)
	if err := r.store.ReplaceWorkingHours(ctx, windows); err != nil {
		return err
	}

	r.log.Debug("working hours refreshed", zap.Int("windows", len(windows)))
	return nil
}

// Run refreshes every interval until ctx is done. Failures are logged and
// retried on the next tick.
func (r *HorizonRefresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
				r.log.Error("failed to refresh working hours", zap.Error(err))
			}
		}
	}
}
