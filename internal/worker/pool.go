package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/giftroll/internal/logger"
)

// Job is a unit of background work. Name labels it in logs.
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines. Each job gets its own
// deadline and a panic in one job does not take its worker down.
type Pool struct {
	workers int
	timeout time.Duration
	queue   chan Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(workers, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: max(workers, 1),
		timeout: DefaultJobTimeout,
		queue:   make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.queue:
					p.run(job)
				case <-p.ctx.Done():
					return
				}
			}
		}()
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	log := logger.FromContext(ctx).With("job", job.Name())

	started := time.Now()
	if err := safeProcess(ctx, job); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err, "took", time.Since(started))
		return
	}
	log.Debug(LogMsgWorkerJobDone, "took", time.Since(started))
}

func safeProcess(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgJobPanicked, r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue adds a job, blocking while the queue is full. It gives up once the pool stops.
func (p *Pool) Enqueue(job Job) {
	select {
	case p.queue <- job:
	case <-p.ctx.Done():
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.queue <- job:
		return true
	default:
		logger.Warn(LogMsgWorkerQueueFull, "job", job.Name())
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs are dropped.
// Safe to call twice.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
