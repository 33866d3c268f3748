// Package scheduler drives discovery of eligible notifications with three
// periodic sweeps: newly pending records, retry-eligible failures and a
// statistics snapshot. Sweeps only discover and enqueue; the actual sends
// run on the worker pool so a slow delivery never stalls discovery.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/model"
	"notifyr/internal/worker"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type notificationRepository interface {
	ListByStatus(ctx context.Context, status model.Status, limit, offset int) ([]model.Notification, error)
	ListRetryable(ctx context.Context) ([]model.Notification, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
	CountSentToday(ctx context.Context) (int64, error)
	CountFailedToday(ctx context.Context) (int64, error)
}

type attempter interface {
	AttemptSend(ctx context.Context, id uuid.UUID)
}

type retryScheduler interface {
	ScheduleRetry(ctx context.Context, n model.Notification)
}

type dispatcher interface {
	Submit(task worker.Task) error
}

// Config holds sweep intervals and the pending page size.
type Config struct {
	PendingInterval time.Duration `mapstructure:"pending_interval"`
	RetryInterval   time.Duration `mapstructure:"retry_interval"`
	StatsInterval   time.Duration `mapstructure:"stats_interval"`
	BatchSize       int           `mapstructure:"batch_size"`
}

// Scheduler owns the periodic sweeps. Each sweep is guarded so it is never
// re-entered while a previous run is still in progress.
type Scheduler struct {
	cfg     Config
	repo    notificationRepository
	sender  attempter
	retrier retryScheduler
	pool    dispatcher

	cron *cron.Cron
}

// New creates a scheduler. Zero intervals fall back to 30s/2m/5m and a
// zero batch size falls back to 10.
func New(cfg Config, repo notificationRepository, sender attempter, retrier retryScheduler, pool dispatcher) *Scheduler {
	if cfg.PendingInterval <= 0 {
		cfg.PendingInterval = 30 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 2 * time.Minute
	}
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = 5 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}

	return &Scheduler{
		cfg:     cfg,
		repo:    repo,
		sender:  sender,
		retrier: retrier,
		pool:    pool,
	}
}

// Run registers the sweeps and blocks until ctx is cancelled, then waits
// for any in-flight sweep to finish.
func (s *Scheduler) Run(ctx context.Context) {
	chain := cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(&zlog.Logger)))

	s.cron = cron.New()
	s.cron.Schedule(cron.Every(s.cfg.PendingInterval), chain.Then(cron.FuncJob(func() {
		s.sweepPending(ctx)
	})))
	s.cron.Schedule(cron.Every(s.cfg.RetryInterval), chain.Then(cron.FuncJob(func() {
		s.sweepRetries(ctx)
	})))
	s.cron.Schedule(cron.Every(s.cfg.StatsInterval), chain.Then(cron.FuncJob(func() {
		s.logStats(ctx)
	})))

	s.cron.Start()
	zlog.Logger.Info().
		Dur("pending_interval", s.cfg.PendingInterval).
		Dur("retry_interval", s.cfg.RetryInterval).
		Dur("stats_interval", s.cfg.StatsInterval).
		Msg("scheduler started")

	<-ctx.Done()
	<-s.cron.Stop().Done()
	zlog.Logger.Info().Msg("scheduler stopped")
}

// sweepPending dispatches a page of pending notifications, oldest first.
// Records scheduled for the future stay pending and are re-evaluated on the
// next sweep.
func (s *Scheduler) sweepPending(ctx context.Context) {
	pending, err := s.repo.ListByStatus(ctx, model.StatusPending, s.cfg.BatchSize, 0)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("pending sweep: failed to list notifications")
		return
	}

	if len(pending) == 0 {
		return
	}

	zlog.Logger.Info().Int("count", len(pending)).Msg("pending sweep: found notifications to process")

	now := time.Now()
	for _, n := range pending {
		if !n.ReadyAt(now) {
			zlog.Logger.Debug().Str("id", n.ID.String()).Time("scheduled_at", *n.ScheduledAt).
				Msg("pending sweep: notification scheduled for the future, skipping")
			continue
		}

		id := n.ID
		err := s.pool.Submit(func(ctx context.Context) {
			s.sender.AttemptSend(ctx, id)
		})
		if err != nil {
			if errors.Is(err, worker.ErrQueueFull) {
				// Stop submitting; the rest of the page stays pending and
				// the next sweep picks it up.
				return
			}

			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("pending sweep: failed to dispatch")
		}
	}
}

// sweepRetries hands every retry-eligible failure to the retrier.
func (s *Scheduler) sweepRetries(ctx context.Context) {
	retryable, err := s.repo.ListRetryable(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("retry sweep: failed to list retryable notifications")
		return
	}

	if len(retryable) == 0 {
		return
	}

	zlog.Logger.Info().Int("count", len(retryable)).Msg("retry sweep: found notifications eligible for retry")

	for _, n := range retryable {
		s.retrier.ScheduleRetry(ctx, n)
	}
}

// logStats logs a snapshot of per-status counts and today's outcomes.
// Observability only, no state is touched.
func (s *Scheduler) logStats(ctx context.Context) {
	statuses := []model.Status{
		model.StatusPending, model.StatusSending, model.StatusSent,
		model.StatusFailed, model.StatusRetrying,
	}

	event := zlog.Logger.Info()
	for _, status := range statuses {
		count, err := s.repo.CountByStatus(ctx, status)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("status", string(status)).Msg("stats sweep: failed to count")
			return
		}

		event = event.Int64(string(status), count)
	}

	sentToday, err := s.repo.CountSentToday(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("stats sweep: failed to count sent today")
		return
	}

	failedToday, err := s.repo.CountFailedToday(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("stats sweep: failed to count failed today")
		return
	}

	event.Int64("sent_today", sentToday).Int64("failed_today", failedToday).
		Msg("notification statistics")
}
