package retrier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "notifyr/internal/mocks/retrier"
	"notifyr/internal/model"
	"notifyr/internal/repository/notification"
	"notifyr/internal/worker"
)

func TestBackoff(t *testing.T) {
	max := 60 * time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 32 * time.Second},
		{6, 60 * time.Second},
		{7, 60 * time.Second},
		{100, 60 * time.Second},
	}

	for _, tt := range tests {
		got := Backoff(tt.attempt, max)
		assert.Equal(t, tt.want, got, "attempt %d", tt.attempt)
	}
}

func TestBackoff_BadAttempt(t *testing.T) {
	// Attempts below 1 are treated as the first attempt.
	assert.Equal(t, 2*time.Second, Backoff(0, 60*time.Second))
	assert.Equal(t, 2*time.Second, Backoff(-5, 60*time.Second))
}

func TestScheduleRetry_NotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	// Budget exhausted: nothing is touched.
	n := model.Notification{
		ID:         uuid.New(),
		Status:     model.StatusFailed,
		RetryCount: 3,
		MaxRetries: 3,
	}

	r.ScheduleRetry(context.Background(), n)
}

func TestScheduleRetry_BudgetConsumedElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	n := model.Notification{
		ID:         uuid.New(),
		Status:     model.StatusFailed,
		RetryCount: 1,
		MaxRetries: 3,
	}

	repo.EXPECT().
		MarkRetrying(gomock.Any(), n.ID).
		Return(0, notification.ErrNotRetryable)

	r.ScheduleRetry(context.Background(), n)
}

func TestScheduleRetry_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	n := model.Notification{
		ID:         uuid.New(),
		Status:     model.StatusFailed,
		RetryCount: 1,
		MaxRetries: 3,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	repo.EXPECT().
		MarkRetrying(gomock.Any(), n.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (int, error) {
			defer close(done)
			return 2, nil
		})

	// The wait goroutine observes the cancelled context and never
	// re-checks status or dispatches.
	r.ScheduleRetry(ctx, n)
	<-done
	time.Sleep(50 * time.Millisecond)
}

func TestWaitAndDispatch_StillRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	id := uuid.New()
	ctx := context.Background()

	repo.EXPECT().
		GetStatusByID(gomock.Any(), id).
		Return(model.StatusRetrying, nil)

	var submitted worker.Task
	pool.EXPECT().
		Submit(gomock.Any()).
		DoAndReturn(func(task worker.Task) error {
			submitted = task
			return nil
		})

	r.waitAndDispatch(ctx, id, time.Millisecond)

	// Running the submitted task performs the actual attempt.
	sender.EXPECT().AttemptSend(gomock.Any(), id)
	submitted(ctx)
}

func TestWaitAndDispatch_ResolvedWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	id := uuid.New()

	// An operator requeued the notification while we slept; the retry
	// is dropped.
	repo.EXPECT().
		GetStatusByID(gomock.Any(), id).
		Return(model.StatusPending, nil)

	r.waitAndDispatch(context.Background(), id, time.Millisecond)
}

func TestScheduleRetry_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	sender := mocks.NewMockattempter(ctrl)
	pool := mocks.NewMockdispatcher(ctrl)

	r := NewRetrier(repo, sender, pool, 0)

	// Only one of the concurrent schedulers wins the budget; the rest
	// see ErrNotRetryable and back off.
	n := model.Notification{
		ID:         uuid.New(),
		Status:     model.StatusFailed,
		RetryCount: 2,
		MaxRetries: 3,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var once sync.Once
	repo.EXPECT().
		MarkRetrying(gomock.Any(), n.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (int, error) {
			var won bool
			once.Do(func() { won = true })
			if won {
				return 3, nil
			}
			return 0, notification.ErrNotRetryable
		}).
		Times(4)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ScheduleRetry(ctx, n)
		}()
	}
	wg.Wait()
	time.Sleep(50 * time.Millisecond)
}
