package miniapp

import "sync/atomic"

// busyFlag serialises one kind of action
type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() bool {
	return b.v.CompareAndSwap(false, true)
}

func (b *busyFlag) release() {
	b.v.Store(false)
}

func (b *busyFlag) busy() bool {
	return b.v.Load()
}
