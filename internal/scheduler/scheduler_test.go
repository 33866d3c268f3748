package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "notifyr/internal/mocks/scheduler"
	"notifyr/internal/model"
	"notifyr/internal/worker"
)

func setupScheduler(t *testing.T, cfg Config) (*Scheduler, *mocks.MocknotificationRepository, *mocks.Mockattempter, *mocks.MockretryScheduler, *mocks.Mockdispatcher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	retrier := mocks.NewMockretryScheduler(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	s := New(cfg, repo, sender, retrier, pool)

	return s, repo, sender, retrier, pool
}

func TestNew_Defaults(t *testing.T) {
	s, _, _, _, _ := setupScheduler(t, Config{})

	assert.Equal(t, 30*time.Second, s.cfg.PendingInterval)
	assert.Equal(t, 2*time.Minute, s.cfg.RetryInterval)
	assert.Equal(t, 5*time.Minute, s.cfg.StatsInterval)
	assert.Equal(t, 10, s.cfg.BatchSize)
}

func TestSweepPending_DispatchesReadyNotifications(t *testing.T) {
	s, repo, sender, _, pool := setupScheduler(t, Config{BatchSize: 10})

	ready := model.Notification{ID: uuid.New(), Status: model.StatusPending}
	future := time.Now().Add(time.Hour)
	scheduled := model.Notification{
		ID:          uuid.New(),
		Status:      model.StatusPending,
		ScheduledAt: &future,
	}

	repo.EXPECT().
		ListByStatus(gomock.Any(), model.StatusPending, 10, 0).
		Return([]model.Notification{ready, scheduled}, nil)

	// Only the ready notification is dispatched; the future one stays
	// pending for a later sweep.
	pool.EXPECT().
		Submit(gomock.Any()).
		DoAndReturn(func(task worker.Task) error {
			task(context.Background())
			return nil
		})
	sender.EXPECT().AttemptSend(gomock.Any(), ready.ID)

	s.sweepPending(context.Background())
}

func TestSweepPending_StopsWhenQueueFull(t *testing.T) {
	s, repo, _, _, pool := setupScheduler(t, Config{BatchSize: 10})

	n1 := model.Notification{ID: uuid.New(), Status: model.StatusPending}
	n2 := model.Notification{ID: uuid.New(), Status: model.StatusPending}

	repo.EXPECT().
		ListByStatus(gomock.Any(), model.StatusPending, 10, 0).
		Return([]model.Notification{n1, n2}, nil)

	// The first submit fills the queue; the rest of the page is left
	// for the next sweep.
	pool.EXPECT().Submit(gomock.Any()).Return(worker.ErrQueueFull)

	s.sweepPending(context.Background())
}

func TestSweepPending_ListError(t *testing.T) {
	s, repo, _, _, _ := setupScheduler(t, Config{BatchSize: 10})

	repo.EXPECT().
		ListByStatus(gomock.Any(), model.StatusPending, 10, 0).
		Return(nil, errors.New("db down"))

	s.sweepPending(context.Background())
}

func TestSweepRetries_FeedsRetrier(t *testing.T) {
	s, repo, _, retrier, _ := setupScheduler(t, Config{})

	n1 := model.Notification{ID: uuid.New(), Status: model.StatusFailed, RetryCount: 1, MaxRetries: 3}
	n2 := model.Notification{ID: uuid.New(), Status: model.StatusFailed, RetryCount: 2, MaxRetries: 3}

	repo.EXPECT().
		ListRetryable(gomock.Any()).
		Return([]model.Notification{n1, n2}, nil)

	retrier.EXPECT().ScheduleRetry(gomock.Any(), n1)
	retrier.EXPECT().ScheduleRetry(gomock.Any(), n2)

	s.sweepRetries(context.Background())
}

func TestSweepRetries_NothingEligible(t *testing.T) {
	s, repo, _, _, _ := setupScheduler(t, Config{})

	repo.EXPECT().
		ListRetryable(gomock.Any()).
		Return(nil, nil)

	s.sweepRetries(context.Background())
}

func TestLogStats(t *testing.T) {
	s, repo, _, _, _ := setupScheduler(t, Config{})

	for _, status := range []model.Status{
		model.StatusPending, model.StatusSending, model.StatusSent,
		model.StatusFailed, model.StatusRetrying,
	} {
		repo.EXPECT().CountByStatus(gomock.Any(), status).Return(int64(1), nil)
	}
	repo.EXPECT().CountSentToday(gomock.Any()).Return(int64(5), nil)
	repo.EXPECT().CountFailedToday(gomock.Any()).Return(int64(2), nil)

	s.logStats(context.Background())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, _, _, _, _ := setupScheduler(t, Config{
		PendingInterval: time.Hour,
		RetryInterval:   time.Hour,
		StatsInterval:   time.Hour,
		BatchSize:       10,
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
