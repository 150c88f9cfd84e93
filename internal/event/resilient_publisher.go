package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/giftroll/internal/logger"
)

type retryItem struct {
	event     Event
	attempt   int
	lastErr   error
	notBefore time.Time
}

// ResilientPublisher wraps a Bus. Failed publishes are retried in the background with
// exponential backoff and end up in the dead-letter file once retries run out.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// Publish implements Bus. Delivery failures are queued for retry and never returned.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.inner.Subscribe(eventType, handler)
}

// PublishWithRetry publishes once and queues a retry on failure
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryItem{event: event, attempt: 1, lastErr: err, notBefore: time.Now().Add(CalculateRetryDelay(rp.baseDelay, 1))})
}

func (rp *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-rp.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
		rp.writeDeadLetter(item)
		return
	default:
	}

	select {
	case rp.queue <- item:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		rp.writeDeadLetter(item)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case item := <-rp.queue:
			if wait := time.Until(item.notBefore); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-rp.shutdown:
					timer.Stop()
					rp.writeDeadLetter(item)
					rp.drain()
					return
				}
			}
			rp.retry(item)
		}
	}
}

func (rp *ResilientPublisher) retry(item retryItem) {
	err := rp.inner.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= rp.maxRetries {
		logger.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
		rp.writeDeadLetter(item)
		return
	}

	item.attempt++
	item.notBefore = time.Now().Add(CalculateRetryDelay(rp.baseDelay, item.attempt))
	logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)

	select {
	case rp.queue <- item:
	default:
		rp.writeDeadLetter(item)
	}
}

func (rp *ResilientPublisher) drain() {
	for {
		select {
		case item := <-rp.queue:
			rp.writeDeadLetter(item)
		default:
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := rp.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker. Pending retries go to the dead-letter file.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.once.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return rp.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
