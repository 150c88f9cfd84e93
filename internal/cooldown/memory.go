package cooldown

import (
	"context"
	"sync"
	"time"
)

type memoryKey struct {
	telegramID int64
	action     string
}

// memoryBackend keeps cooldowns in process. A single mutex serialises enforcement, so it
// only suits one instance.
type memoryBackend struct {
	mu       sync.Mutex
	config   Config
	now      func() time.Time
	lastUsed map[memoryKey]time.Time
}

// NewMemoryService creates a cooldown service that keeps state in memory
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:   config,
		now:      time.Now,
		lastUsed: make(map[memoryKey]time.Time),
	}
}

// remaining must be called with mu held
func (b *memoryBackend) remaining(key memoryKey) time.Duration {
	if b.config.DevMode {
		return 0
	}
	t, ok := b.lastUsed[key]
	if !ok {
		return 0
	}
	return remainingAfter(b.now(), &t, b.config.Duration(key.action))
}

func (b *memoryBackend) CheckCooldown(_ context.Context, telegramID int64, action string) (bool, time.Duration, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	left := b.remaining(memoryKey{telegramID, action})
	return left > 0, left, nil
}

func (b *memoryBackend) EnforceCooldown(_ context.Context, telegramID int64, action string, fn func() error) error {
	key := memoryKey{telegramID, action}

	b.mu.Lock()
	defer b.mu.Unlock()

	if left := b.remaining(key); left > 0 {
		return ErrOnCooldown{Action: action, Remaining: left}
	}
	if err := fn(); err != nil {
		return err
	}
	b.lastUsed[key] = b.now()
	return nil
}

func (b *memoryBackend) ResetCooldown(_ context.Context, telegramID int64, action string) error {
	b.mu.Lock()
	delete(b.lastUsed, memoryKey{telegramID, action})
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) GetLastUsed(_ context.Context, telegramID int64, action string) (*time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.lastUsed[memoryKey{telegramID, action}]
	if !ok {
		return nil, nil
	}
	return &t, nil
}
