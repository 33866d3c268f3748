package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPool(2, 10)
	go p.Run(ctx)

	var (
		mu   sync.Mutex
		done int
	)

	for i := 0; i < 5; i++ {
		err := p.Submit(func(ctx context.Context) {
			mu.Lock()
			done++
			mu.Unlock()
		})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return done == 5
	}, time.Second, 10*time.Millisecond)
}

func TestPool_SubmitRejectsWhenQueueFull(t *testing.T) {
	// Pool is never started, so the queue cannot drain.
	p := NewPool(1, 2)

	require.NoError(t, p.Submit(func(ctx context.Context) {}))
	require.NoError(t, p.Submit(func(ctx context.Context) {}))

	err := p.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPool_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := NewPool(2, 2)

	stopped := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("pool did not stop after context cancellation")
	}
}
