package session

import (
	"context"
	"sync"
	"time"
)

// deferrer runs callbacks after a fixed delay. Callbacks scheduled on the
// same channel run one at a time in submission order; nothing is ever
// cancelled.
type deferrer struct {
	delay time.Duration

	mu      sync.Mutex
	pending int
	idle    chan struct{} // closed whenever pending == 0
	tails   map[string]chan struct{}
}

func newDeferrer(delay time.Duration) *deferrer {
	idle := make(chan struct{})
	close(idle)
	return &deferrer{delay: delay, idle: idle, tails: make(map[string]chan struct{})}
}

func (d *deferrer) schedule(channel string, fn func()) {
	done := make(chan struct{})

	d.mu.Lock()
	if d.pending == 0 {
		d.idle = make(chan struct{})
	}
	d.pending++
	prev := d.tails[channel]
	d.tails[channel] = done
	d.mu.Unlock()

	time.AfterFunc(d.delay, func() {
		if prev != nil {
			<-prev
		}
		fn()
		close(done)
		d.finish(channel, done)
	})
}

func (d *deferrer) finish(channel string, done chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tails[channel] == done {
		delete(d.tails, channel)
	}
	d.pending--
	if d.pending == 0 {
		close(d.idle)
	}
}

// wait blocks until nothing is pending or ctx ends.
func (d *deferrer) wait(ctx context.Context) error {
	d.mu.Lock()
	idle := d.idle
	d.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *deferrer) inFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
