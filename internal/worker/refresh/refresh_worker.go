package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/searchcache"
	"github.com/habitaclick/search-service/internal/worker"
)

// refreshTimeout - максимальное время одного фонового обновления
const refreshTimeout = 30 * time.Second

// CacheRefreshWorker выполняет фоновые обновления устаревших записей
// кеша результатов и периодически удаляет записи старше срока хранения
type CacheRefreshWorker struct {
	*worker.BaseWorker
	cache         *searchcache.ResultCache
	sweepInterval time.Duration
}

// NewCacheRefreshWorker создает новый CacheRefreshWorker
func NewCacheRefreshWorker(
	cache *searchcache.ResultCache,
	sweepInterval time.Duration,
	logger *zap.Logger,
) *CacheRefreshWorker {
	return &CacheRefreshWorker{
		BaseWorker:    worker.NewBaseWorker("cache-refresh", logger),
		cache:         cache,
		sweepInterval: sweepInterval,
	}
}

// Start запускает воркер
func (w *CacheRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CacheRefreshWorker",
		zap.Duration("sweep_interval", w.sweepInterval))

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case job := <-w.cache.RefreshQueue():
			w.processJob(ctx, job)

		case <-ticker.C:
			if removed := w.cache.Sweep(); removed > 0 {
				logger.Debug("Swept expired cache entries", zap.Int("removed", removed))
			}
		}
	}
}

// processJob выполняет одно фоновое обновление; ошибка не фатальна,
// устаревшая запись остаётся в кеше до следующего обращения
func (w *CacheRefreshWorker) processJob(ctx context.Context, job searchcache.RefreshJob) {
	logger := w.Logger()

	jobCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := w.cache.Refresh(jobCtx, job); err != nil {
		logger.Warn("Cache refresh failed",
			zap.String("domain", string(job.Key.Domain)),
			zap.String("location", job.Key.Location),
			zap.Error(err))
		return
	}

	logger.Debug("Cache entry refreshed",
		zap.String("domain", string(job.Key.Domain)),
		zap.String("location", job.Key.Location),
		zap.Duration("took", time.Since(start)))
}
