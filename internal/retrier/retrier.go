// Package retrier decides whether a failed notification gets another
// attempt and re-dispatches it after an exponential backoff delay.
package retrier

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/model"
	"notifyr/internal/repository/notification"
	"notifyr/internal/worker"
)

//go:generate mockgen -source=retrier.go -destination=../mocks/retrier/mock.go -package=mocks

// DefaultMaxDelay caps the backoff between attempts.
const DefaultMaxDelay = 60 * time.Second

type notificationRepository interface {
	MarkRetrying(ctx context.Context, id uuid.UUID) (int, error)
	GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error)
}

type attempter interface {
	AttemptSend(ctx context.Context, id uuid.UUID)
}

type dispatcher interface {
	Submit(task worker.Task) error
}

// Backoff returns the delay before the given attempt: 2^attempt seconds,
// capped at max. Attempts 1..6 with a 60s cap give 2, 4, 8, 16, 32, 60.
func Backoff(attempt int, max time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	// 1<<attempt seconds overflows long before attempt reaches 63; the cap
	// kicks in well before that for any sane configuration.
	if attempt > 30 {
		return max
	}

	delay := time.Duration(1<<uint(attempt)) * time.Second
	if delay > max {
		return max
	}

	return delay
}

// Retrier schedules delayed re-attempts for failed notifications.
type Retrier struct {
	repo     notificationRepository
	sender   attempter
	pool     dispatcher
	maxDelay time.Duration
}

// NewRetrier creates a retrier that re-dispatches attempts through the
// given pool. maxDelay <= 0 falls back to DefaultMaxDelay.
func NewRetrier(repo notificationRepository, sender attempter, pool dispatcher, maxDelay time.Duration) *Retrier {
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}

	return &Retrier{repo: repo, sender: sender, pool: pool, maxDelay: maxDelay}
}

// ScheduleRetry consumes one unit of retry budget and arranges a delayed
// re-attempt. The wait runs on its own timer goroutine so it never occupies
// a pool worker. If the notification is resolved while waiting, the retry
// is a no-op.
func (r *Retrier) ScheduleRetry(ctx context.Context, n model.Notification) {
	if !n.CanRetry() {
		zlog.Logger.Debug().Str("id", n.ID.String()).Msg("notification not eligible for retry")
		return
	}

	attempt, err := r.repo.MarkRetrying(ctx, n.ID)
	if err != nil {
		if errors.Is(err, notification.ErrNotRetryable) {
			zlog.Logger.Debug().Str("id", n.ID.String()).Msg("retry budget consumed elsewhere, skipping")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification as retrying")
		return
	}

	delay := Backoff(attempt, r.maxDelay)
	zlog.Logger.Info().Str("id", n.ID.String()).Int("attempt", attempt).Dur("delay", delay).
		Msg("retry scheduled")

	go r.waitAndDispatch(ctx, n.ID, delay)
}

func (r *Retrier) waitAndDispatch(ctx context.Context, id uuid.UUID, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	// The record may have been resolved manually while we slept.
	status, err := r.repo.GetStatusByID(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to re-check notification before retry")
		return
	}
	if status != model.StatusRetrying {
		zlog.Logger.Debug().Str("id", id.String()).Str("status", string(status)).
			Msg("notification no longer retrying, dropping retry")
		return
	}

	err = r.pool.Submit(func(ctx context.Context) {
		r.sender.AttemptSend(ctx, id)
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to dispatch retry attempt")
	}
}
