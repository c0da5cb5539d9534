package service

import (
	"context"
	"time"

	"syscall-optimizer-backend/internal/config"
	"syscall-optimizer-backend/internal/models"
	"syscall-optimizer-backend/pkg/logger"
)

// WorkerService feeds the optimizer from the sample source on a fixed
// interval and persists system health snapshots for the dashboard.
type WorkerService struct {
	optimizer   *OptimizerService
	source      SampleSource
	healthStore HealthStore
	cfg         config.OptimizerConfig
}

func NewWorkerService(optimizer *OptimizerService, source SampleSource, healthStore HealthStore, cfg config.OptimizerConfig) *WorkerService {
	return &WorkerService{
		optimizer:   optimizer,
		source:      source,
		healthStore: healthStore,
		cfg:         cfg,
	}
}

// Start begins the background sampling loop. Blocks until ctx is cancelled.
func (w *WorkerService) Start(ctx context.Context) {
	log := logger.Get()

	// Seed immediately so the first dashboard view has data
	w.tick()

	ticker := time.NewTicker(w.cfg.RefreshInterval)
	defer ticker.Stop()

	log.Info().Dur("interval", w.cfg.RefreshInterval).Msg("Background sampler started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Background sampler stopped")
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

// tick records one batch of samples and snapshots system health.
func (w *WorkerService) tick() {
	w.optimizer.Ingest(w.cfg.SampleBatchSize)

	usage := w.source.SystemResources()
	snapshot := &models.SystemHealth{
		CPUUsage:       usage.CPUPercent,
		MemoryUsage:    usage.MemoryPercent,
		DiskUsage:      usage.DiskIOPercent,
		TotalSyscalls:  w.optimizer.TotalExecutions(),
		CriticalAlerts: w.optimizer.CriticalAlerts(),
	}

	if err := w.healthStore.CreateSnapshot(snapshot); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("Failed to persist system health snapshot")
	}
}
