// Package worker runs delivery attempts on a fixed pool of goroutines fed
// by a bounded queue. The queue is the system's backpressure point: when it
// is full, new work is rejected instead of piling up.
package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/wb-go/wbf/zlog"
)

// ErrQueueFull is returned by Submit when the dispatch queue is saturated.
var ErrQueueFull = errors.New("dispatch queue is full")

// Task is one unit of background work, typically a single send attempt.
type Task func(ctx context.Context)

// Pool is a fixed-size worker pool with a bounded backlog.
type Pool struct {
	tasks   chan Task
	workers int

	startOnce sync.Once
	wg        sync.WaitGroup
}

// NewPool creates a pool with the given number of workers and queue depth.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	return &Pool{
		tasks:   make(chan Task, queueSize),
		workers: workers,
	}
}

// Run starts the workers and blocks until ctx is cancelled and all
// in-flight tasks have finished. A task runs to completion once picked up.
func (p *Pool) Run(ctx context.Context) {
	p.startOnce.Do(func() {
		p.wg.Add(p.workers)
		for i := 0; i < p.workers; i++ {
			go p.worker(ctx, i)
		}
	})

	<-ctx.Done()
	p.wg.Wait()
	zlog.Logger.Info().Msg("worker pool stopped")
}

// Submit enqueues a task without blocking. When the queue is full the task
// is dropped with a warning and ErrQueueFull is returned; the caller's next
// sweep will rediscover the record.
func (p *Pool) Submit(task Task) error {
	select {
	case p.tasks <- task:
		return nil
	default:
		zlog.Logger.Warn().
			Int("queue_len", len(p.tasks)).
			Int("queue_cap", cap(p.tasks)).
			Msg("dispatch queue full, dropping task")
		return ErrQueueFull
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	zlog.Logger.Debug().Int("worker", id).Msg("worker started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Debug().Int("worker", id).Msg("worker shutting down")
			return
		case task := <-p.tasks:
			task(ctx)
		}
	}
}
