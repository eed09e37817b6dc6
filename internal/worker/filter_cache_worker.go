package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/modavn/catalog_api/internal/service"
)

// FilterCacheWorker periodically recomputes the filter-values cache so the
// option lists stay warm even when no variant write has invalidated them.
type FilterCacheWorker struct {
	variantService *service.VariantService
	interval       time.Duration
}

// NewFilterCacheWorker constructs a FilterCacheWorker.
func NewFilterCacheWorker(variantService *service.VariantService, interval time.Duration) *FilterCacheWorker {
	return &FilterCacheWorker{
		variantService: variantService,
		interval:       interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *FilterCacheWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting filter cache worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Filter cache worker stopped")
			return
		}
	}
}

func (w *FilterCacheWorker) run(ctx context.Context) {
	start := time.Now()
	if _, err := w.variantService.RefreshFilterValues(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh filter values")
		return
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("Filter values refreshed")
}
