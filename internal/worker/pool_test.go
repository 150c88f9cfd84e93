package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcJob func(ctx context.Context) error

func (f funcJob) Name() string                      { return "test" }
func (f funcJob) Process(ctx context.Context) error { return f(ctx) }

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
}

func TestPool_RunsEveryJob(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var wg sync.WaitGroup
	var count atomic.Int32
	wg.Add(5)
	for i := 0; i < 5; i++ {
		pool.Enqueue(funcJob(func(ctx context.Context) error {
			defer wg.Done()
			count.Add(1)
			return nil
		}))
	}

	wg.Wait()
	assert.Equal(t, int32(5), count.Load())
}

func TestPool_WorkerSurvivesFailures(t *testing.T) {
	tests := []struct {
		name string
		bad  funcJob
	}{
		{"error", func(ctx context.Context) error { return errors.New("boom") }},
		{"panic", func(ctx context.Context) error { panic("boom") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(1, 10)
			pool.Start()
			defer pool.Stop()

			done := make(chan struct{})
			pool.Enqueue(tt.bad)
			pool.Enqueue(funcJob(func(ctx context.Context) error {
				close(done)
				return nil
			}))
			waitClosed(t, done)
		})
	}
}

func TestSafeProcess_ReportsPanic(t *testing.T) {
	err := safeProcess(context.Background(), funcJob(func(ctx context.Context) error { panic("kaboom") }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestPool_JobsGetDeadline(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	got := make(chan bool, 1)
	pool.Enqueue(funcJob(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		got <- ok
		return nil
	}))

	assert.True(t, <-got)
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	pool.Enqueue(funcJob(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	waitClosed(t, started)

	pool.Stop()
	waitClosed(t, cancelled)
	assert.NotPanics(t, pool.Stop)
}

func TestPool_TryEnqueue(t *testing.T) {
	noop := funcJob(func(ctx context.Context) error { return nil })

	t.Run("full queue", func(t *testing.T) {
		// not started, so nothing drains the queue
		pool := NewPool(1, 1)
		assert.True(t, pool.TryEnqueue(noop))
		assert.False(t, pool.TryEnqueue(noop))
	})

	t.Run("stopped pool", func(t *testing.T) {
		pool := NewPool(1, 1)
		pool.Stop()
		assert.False(t, pool.TryEnqueue(noop))
		assert.NotPanics(t, func() { pool.Enqueue(noop) })
	})
}
