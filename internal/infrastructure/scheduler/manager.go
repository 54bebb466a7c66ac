// Package scheduler manages background maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"clubgate/internal/shared/biztime"
	"clubgate/internal/shared/logger"
)

// BatchJob is a scheduled batch task. Each Execute call processes one
// batch and returns the number of items affected.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Manager owns the gocron scheduler instance and the lifecycle of all
// registered jobs.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterTokenCleanupJob registers the hourly sweep of overdue active
// tokens. Lazy expiry at read time keeps redemption correct between runs;
// the sweep only keeps the stored statuses honest for reporting.
func (m *Manager) RegisterTokenCleanupJob(cleanupJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.sweepExpiredTokens(ctx, cleanupJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("access", "token-cleanup"),
		gocron.WithName("token-cleanup"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered token cleanup job", "interval", "1h")
	return nil
}

func (m *Manager) sweepExpiredTokens(ctx context.Context, cleanupJob BatchJob) {
	m.logger.Debugw("token cleanup sweep started")

	startTime := biztime.NowUTC()

	count, err := cleanupJob.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("token cleanup sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("token cleanup sweep completed",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no expired tokens to sweep",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
