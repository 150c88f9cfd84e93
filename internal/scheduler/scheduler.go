// Package scheduler runs the periodic maintenance jobs: expiring stale TON invoices
// and refreshing the leaderboard cache.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/giftroll/internal/worker"
)

// Task is one periodic job
type Task struct {
	Interval time.Duration
	Job      worker.Job
	// RunOnStart enqueues the job once as soon as it is scheduled
	RunOnStart bool
}

// Scheduler feeds periodic jobs into a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs task.Job every task.Interval until Stop. A tick is dropped when the
// pool queue is full; the next tick retries.
func (s *Scheduler) Schedule(task Task) {
	if task.RunOnStart {
		s.enqueue(task)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(task.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(task)
			case <-s.quit:
				return
			}
		}
	}()

	slog.Default().Info(LogMsgTaskScheduled, "task", task.Job.Name(), "interval", task.Interval)
}

func (s *Scheduler) enqueue(task Task) {
	if !s.workerPool.TryEnqueue(task.Job) {
		slog.Default().Warn(LogMsgTickDropped, "task", task.Job.Name())
	}
}

// Stop stops all scheduled jobs. Jobs already queued still run on the pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
