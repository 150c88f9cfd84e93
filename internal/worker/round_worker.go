package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// RoundService is the part of the rolls service the timer drives
type RoundService interface {
	Restore(ctx context.Context) error
	Settle(ctx context.Context) (*domain.SettledRound, error)
	RoundEndsAt() time.Time
}

// RoundWorker settles each rolls round when its countdown reaches zero. A failed
// settlement is retried after retryDelay without advancing the round.
type RoundWorker struct {
	service    RoundService
	retryDelay time.Duration

	started  atomic.Bool
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewRoundWorker(service RoundService) *RoundWorker {
	return &RoundWorker{
		service:    service,
		retryDelay: SettlementRetryDelay,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start restores persisted history and begins the settlement loop. A restore failure
// is logged and the table starts empty. Start must be called at most once.
func (w *RoundWorker) Start(ctx context.Context) {
	if err := w.service.Restore(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgRoundRestoreFailed, "error", err)
	}
	w.started.Store(true)
	go w.loop(w.service.RoundEndsAt())
}

func (w *RoundWorker) loop(firstDeadline time.Time) {
	defer close(w.done)

	timer := time.NewTimer(time.Until(firstDeadline))
	defer timer.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-timer.C:
		}

		// settlement runs detached from shutdown so a round is never half applied
		ctx := context.Background()
		wait := w.retryDelay
		if _, err := w.service.Settle(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgSettlementFailed, "error", err, "retry_in", w.retryDelay)
		} else {
			wait = max(time.Until(w.service.RoundEndsAt()), 0)
			logger.Debug(LogMsgSchedulingSettlement, "in", wait)
		}
		timer.Reset(wait)
	}
}

// Shutdown stops the loop, letting a settlement in flight finish. It returns ctx.Err()
// when that takes longer than ctx allows. A worker that was never started returns at once.
func (w *RoundWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	first := false
	w.stopOnce.Do(func() {
		first = true
		close(w.stop)
	})
	if !first || !w.started.Load() {
		return nil
	}
	log.Info(LogMsgRoundWorkerStopping)

	select {
	case <-w.done:
		log.Info(LogMsgRoundWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRoundWorkerStopTimeout)
		return ctx.Err()
	}
}
