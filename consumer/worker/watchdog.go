package worker

import (
	"context"
	"time"

	infraPkg "github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/repository"
)

const watchdogLockKey = "jobs:watchdog:lock"

// Watchdog fails RUNNING jobs whose worker died. A redis SetNX lock keeps the
// sweep single-flight across consumer replicas.
type Watchdog struct {
	infra      *infraPkg.Infra
	repository *repository.Repository
	timeout    time.Duration
	interval   time.Duration
}

func NewWatchdog(infra *infraPkg.Infra, repo *repository.Repository, timeout, interval time.Duration) *Watchdog {
	return &Watchdog{
		infra:      infra,
		repository: repo,
		timeout:    timeout,
		interval:   interval,
	}
}

func (w *Watchdog) Start(ctx context.Context) {
	w.infra.Logger.InfoWithContextf(ctx, "[Watchdog] Started, timeout %s, sweep every %s", w.timeout, w.interval)

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.infra.Logger.InfoWithContextf(ctx, "[Watchdog] Shutting down...")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *Watchdog) sweep(ctx context.Context) {
	acquired, err := w.infra.Redis.SetNX(ctx, watchdogLockKey, time.Now().Unix(), w.interval)
	if err != nil {
		w.infra.Logger.WarningWithContextf(ctx, "[Watchdog] Failed to acquire sweep lock: %v", err)
		return
	}
	if !acquired {
		return
	}

	cutoff := time.Now().UTC().Add(-w.timeout)
	failed, err := w.repository.JobRepo.FailStale(cutoff, "job timed out")
	if err != nil {
		w.infra.Logger.ErrorWithContextf(ctx, err, "[Watchdog] Sweep failed: %v", err)
		return
	}
	if failed > 0 {
		w.infra.Logger.WarningWithContextf(ctx, "[Watchdog] Failed %d stale jobs older than %s", failed, w.timeout)
	}
}
