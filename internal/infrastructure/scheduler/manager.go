// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"ticketdesk/internal/shared/logger"
)

// SweepJob is a periodic maintenance job. Execute processes one sweep and
// returns the number of items it touched.
type SweepJob interface {
	Execute(ctx context.Context) (int, error)
}

// Manager owns the single gocron scheduler instance for the process.
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

// RegisterReconcileJob schedules the periodic reconcile sweep. A zero
// interval disables it; reconcile is then available only on demand through
// the console.
func (m *Manager) RegisterReconcileJob(interval time.Duration, job SweepJob) error {
	if interval <= 0 {
		m.logger.Info("periodic reconcile disabled")
		return nil
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			touched, err := job.Execute(ctx)
			if err != nil {
				m.logger.Errorw("reconcile sweep failed", "error", err)
				return
			}
			if touched > 0 {
				m.logger.Infow("reconcile sweep completed", "tickets_closed", touched)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("tickets", "reconcile"),
		gocron.WithName("ticket-reconciler"),
	)
	return err
}

// RegisterThrottlePruneJob periodically drops expired gate and cooldown
// entries from the in-memory throttle.
func (m *Manager) RegisterThrottlePruneJob(prune func()) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(prune),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("tickets", "throttle"),
		gocron.WithName("throttle-pruner"),
	)
	return err
}

// Start begins executing registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Info("scheduler started")
}

// Stop shuts the scheduler down and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}

	m.started = false
	m.logger.Info("scheduler stopped")
	return nil
}
